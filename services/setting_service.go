package services

import (
	"context"
	"strings"

	"estate-cms/models"
	"estate-cms/repositories"
)

type SettingService interface {
	Get(ctx context.Context) (*models.Setting, error)
	Update(ctx context.Context, req models.SettingsUpdateRequest) (*models.Setting, error)
}

type settingService struct {
	settingRepo repositories.SettingRepository
}

func NewSettingService(settingRepo repositories.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) Get(ctx context.Context) (*models.Setting, error) {
	return s.settingRepo.GetOrCreate(ctx)
}

// Update merges the supplied values; empty strings and a zero page size are
// treated as absent.
func (s *settingService) Update(ctx context.Context, req models.SettingsUpdateRequest) (*models.Setting, error) {
	fields := map[string]any{}
	if v := strings.TrimSpace(req.SiteTitle); v != "" {
		fields["site_title"] = v
	}
	if v := strings.TrimSpace(req.AdminEmail); v != "" {
		fields["admin_email"] = v
	}
	if req.ItemsPerPage != 0 {
		if req.ItemsPerPage < 0 {
			return nil, models.NewValidationError("itemsPerPage must be positive")
		}
		fields["items_per_page"] = req.ItemsPerPage
	}
	return s.settingRepo.Update(ctx, fields)
}
