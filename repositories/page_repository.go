package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"estate-cms/models"
)

type PageRepository interface {
	Repository[models.Page]
	GetByName(ctx context.Context, name models.PageName) (*models.Page, error)
	ListSummaries(ctx context.Context) ([]models.PageSummary, error)
	UpsertByName(ctx context.Context, name models.PageName, fields map[string]any) (*models.Page, error)
}

type pageRepository struct {
	Repository[models.Page]
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{
		Repository: NewRepository[models.Page](db, "Page"),
		db:         db,
	}
}

func (r *pageRepository) GetByName(ctx context.Context, name models.PageName) (*models.Page, error) {
	return r.First(ctx, ListOptions{Where: map[string]any{"name": name}})
}

func (r *pageRepository) ListSummaries(ctx context.Context) ([]models.PageSummary, error) {
	summaries := []models.PageSummary{}
	err := r.db.WithContext(ctx).Model(&models.Page{}).
		Select("name", "title", "last_updated").
		Order("id asc").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	return summaries, nil
}

// UpsertByName creates the page when no record carries name, then applies
// fields as a merge. The name column is never taken from fields.
func (r *pageRepository) UpsertByName(ctx context.Context, name models.PageName, fields map[string]any) (*models.Page, error) {
	delete(fields, "name")

	var page models.Page
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).First(&page).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			page = models.Page{Name: name}
			if err := tx.Create(&page).Error; err != nil {
				return fmt.Errorf("creating page %s: %w", name, err)
			}
		} else if err != nil {
			return fmt.Errorf("loading page %s: %w", name, err)
		}

		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&page).Updates(fields).Error; err != nil {
			return fmt.Errorf("updating page %s: %w", name, err)
		}
		return tx.First(&page, page.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
