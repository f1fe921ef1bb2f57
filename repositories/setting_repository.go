package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estate-cms/models"
)

type SettingRepository interface {
	GetOrCreate(ctx context.Context) (*models.Setting, error)
	Update(ctx context.Context, fields map[string]any) (*models.Setting, error)
}

type settingRepository struct {
	Repository[models.Setting]
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{
		Repository: NewRepository[models.Setting](db, "Setting"),
		db:         db,
	}
}

// GetOrCreate returns the settings row, inserting the defaults on first use.
func (r *settingRepository) GetOrCreate(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Order("id asc").First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	setting = models.DefaultSetting()
	if err := r.Create(ctx, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Update(ctx context.Context, fields map[string]any) (*models.Setting, error) {
	setting, err := r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return r.UpdateMerge(ctx, setting.ID, fields)
}
