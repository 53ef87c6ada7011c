// Package identity contains the application services for user accounts and
// credential checks.
package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// CredentialsInput carries the signup and sign-in fields
type CredentialsInput struct {
	FirstName string
	LastName  string
	Password  string
}

// UserService handles user account operations
type UserService struct {
	users      identity.UserRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users identity.UserRepository, bcryptCost int, logger *zap.Logger) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Create registers a new account. The first/last name pair must be unique;
// the password is hashed before it is stored.
func (s *UserService) Create(ctx context.Context, input CredentialsInput) (*identity.User, error) {
	if input.Password == "" {
		return nil, identity.ErrEmptyPassword
	}

	exists, err := s.users.ExistsByName(ctx, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, identity.ErrDuplicateUser
	}

	user, err := identity.NewUser(input.FirstName, input.LastName, input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("first_name", user.FirstName),
	)
	return user, nil
}

// Authenticate verifies the credentials for an existing account. An unknown
// name pair or an empty password is an error; a wrong password is not, the
// result is simply a nil user so callers can shape their own response.
func (s *UserService) Authenticate(ctx context.Context, input CredentialsInput) (*identity.User, error) {
	user, err := s.users.FindByName(ctx, input.FirstName, input.LastName)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrUserNotFound
		}
		return nil, err
	}

	if input.Password == "" {
		return nil, identity.ErrEmptyPassword
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Password mismatch",
			zap.Int64("user_id", user.ID),
		)
		return nil, nil
	}

	return user, nil
}

// Show retrieves a single user by id
func (s *UserService) Show(ctx context.Context, id int64) (*identity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrUserIDNotFound
		}
		return nil, err
	}
	return user, nil
}

// Index lists every user without password hashes
func (s *UserService) Index(ctx context.Context) ([]identity.User, error) {
	return s.users.FindAll(ctx)
}
