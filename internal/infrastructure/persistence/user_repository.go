package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

var _ identity.UserRepository = (*GormUserRepository)(nil)

// NewGormUserRepository creates a new GORM-based user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create persists a new user and sets the generated id on the entity
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = model.ID
	return nil
}

// FindByID retrieves a user by id
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return model.ToDomain(), nil
}

// FindByName retrieves a user by the unique first and last name pair
func (r *GormUserRepository) FindByName(ctx context.Context, firstName, lastName string) (*identity.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("firstname = ? AND lastname = ?", firstName, lastName).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns every user with only public fields selected; password
// hashes never leave the database through this query.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	var modelList []models.UserModel
	err := r.db.WithContext(ctx).
		Select("id", "firstname", "lastname").
		Order("id").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]identity.User, len(modelList))
	for i := range modelList {
		users[i] = *modelList[i].ToDomain()
	}
	return users, nil
}

// ExistsByID checks whether a user with the given id exists
func (r *GormUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// ExistsByName checks whether a user with the given name pair exists
func (r *GormUserRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("firstname = ? AND lastname = ?", firstName, lastName).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// Reset truncates the users table and restarts the id sequence
func (r *GormUserRepository) Reset(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("failed to reset users table: %w", err)
	}
	return nil
}
