package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"

	"estate-cms/models"
	"estate-cms/repositories"
)

type PageService interface {
	List(ctx context.Context) ([]models.PageSummary, error)
	Get(ctx context.Context, name models.PageName) (*models.Page, error)
	Upsert(ctx context.Context, name models.PageName, req models.PageUpsertRequest) (*models.Page, error)
}

type pageService struct {
	pageRepo repositories.PageRepository
	now      func() time.Time
}

func NewPageService(pageRepo repositories.PageRepository) PageService {
	return &pageService{pageRepo: pageRepo, now: time.Now}
}

func (s *pageService) List(ctx context.Context) ([]models.PageSummary, error) {
	return s.pageRepo.ListSummaries(ctx)
}

func (s *pageService) Get(ctx context.Context, name models.PageName) (*models.Page, error) {
	if !name.Valid() {
		return nil, models.NewNotFoundError("Page not found")
	}
	return s.pageRepo.GetByName(ctx, name)
}

// Upsert creates the named page or merges the supplied fields into it. A page
// can only be created with a title.
func (s *pageService) Upsert(ctx context.Context, name models.PageName, req models.PageUpsertRequest) (*models.Page, error) {
	if !name.Valid() {
		return nil, models.NewValidationError("Invalid page name")
	}

	fields := map[string]any{"last_updated": s.now()}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, models.NewValidationError("title cannot be empty")
		}
		fields["title"] = title
	}
	if req.Content != nil {
		fields["content"] = datatypes.JSONMap(req.Content)
	}
	if req.MetaDescription != nil {
		fields["meta_description"] = *req.MetaDescription
	}

	if req.Title == nil {
		if _, err := s.pageRepo.GetByName(ctx, name); err != nil {
			if isNotFound(err) {
				return nil, models.NewValidationError("title is required")
			}
			return nil, err
		}
	}

	return s.pageRepo.UpsertByName(ctx, name, fields)
}
