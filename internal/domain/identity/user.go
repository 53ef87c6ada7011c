package identity

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
)

// Errors surfaced by the identity domain. The messages are part of the
// public API contract and must not be reworded.
var (
	ErrEmptyPassword    = shared.NewDomainError("EMPTY_PASSWORD", "password is empty !")
	ErrDuplicateUser    = shared.NewDomainError("DUPLICATE_USER", "A user exists with the same first name and last name")
	ErrUserNotFound     = shared.NewDomainError("USER_NOT_FOUND", "User is not found !")
	ErrUserIDNotFound   = shared.NewDomainError("USER_ID_NOT_FOUND", "User associated with this id is not found")
	ErrWrongCredentials = shared.NewDomainError("WRONG_CREDENTIALS", "Incorrect password for this user")
)

// User is a registered account. PasswordHash holds the bcrypt digest of the
// signup password; the clear text is never stored.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	PasswordHash string
}

// NewUser hashes the clear-text password with the given bcrypt cost and
// returns the unsaved user. An empty password is rejected here so no caller
// can persist an account without a credential.
func NewUser(firstName, lastName, password string, bcryptCost int) (*User, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword reports whether the clear-text password matches the stored
// bcrypt hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
