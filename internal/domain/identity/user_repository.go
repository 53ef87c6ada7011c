package identity

import "context"

// UserRepository defines the persistence interface for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByName(ctx context.Context, firstName, lastName string) (*User, error)
	// FindAll returns every user without password hashes.
	FindAll(ctx context.Context) ([]User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, firstName, lastName string) (bool, error)
	// Reset truncates the users table and restarts its id sequence.
	Reset(ctx context.Context) error
}
