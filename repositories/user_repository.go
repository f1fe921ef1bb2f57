package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"estate-cms/models"
)

type UserRepository interface {
	Repository[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsWithRole(ctx context.Context, role models.UserRole) (bool, error)
}

type userRepository struct {
	Repository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: NewRepository[models.User](db, "User"),
		db:         db,
	}
}

// GetByEmail matches the email exactly as stored.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.First(ctx, ListOptions{Where: map[string]any{"email": email}})
}

func (r *userRepository) ExistsWithRole(ctx context.Context, role models.UserRole) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&total).Error
	if err != nil {
		return false, fmt.Errorf("counting users with role %s: %w", role, err)
	}
	return total > 0, nil
}
