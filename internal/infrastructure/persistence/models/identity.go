package models

import "github.com/storefront/backend/internal/domain/identity"

// UserModel is the persistence model for users
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"column:firstname;type:varchar(100);not null;uniqueIndex:idx_users_full_name,priority:1"`
	LastName  string `gorm:"column:lastname;type:varchar(100);not null;uniqueIndex:idx_users_full_name,priority:2"`
	Password  string `gorm:"column:password;type:varchar(255);not null"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PasswordHash: m.Password,
	}
}

// UserModelFromDomain converts a domain user to its persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Password:  u.PasswordHash,
	}
}
