package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"estate-cms/models"
	"estate-cms/repositories"
	"estate-cms/storage"
)

type BlogService interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	ListPage(ctx context.Context, page, limit int) ([]models.BlogPost, int64, error)
	Get(ctx context.Context, id uint) (*models.BlogPost, error)
	Create(ctx context.Context, form models.BlogForm, cover *multipart.FileHeader) (*models.BlogPost, error)
	Update(ctx context.Context, id uint, fields map[string]any, cover *multipart.FileHeader) (*models.BlogPost, error)
	Delete(ctx context.Context, id uint) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
	files    FileStore
	now      func() time.Time
}

func NewBlogService(blogRepo repositories.BlogRepository, files FileStore) BlogService {
	return &blogService{blogRepo: blogRepo, files: files, now: time.Now}
}

func (s *blogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.blogRepo.List(ctx, repositories.ListOptions{Order: repositories.OrderNewestFirst})
}

func (s *blogService) ListPage(ctx context.Context, page, limit int) ([]models.BlogPost, int64, error) {
	total, err := s.blogRepo.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	posts, err := s.blogRepo.List(ctx, repositories.ListOptions{
		Order:  repositories.OrderNewestFirst,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *blogService) Get(ctx context.Context, id uint) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, form models.BlogForm, cover *multipart.FileHeader) (*models.BlogPost, error) {
	date := s.now()
	if strings.TrimSpace(form.Date) != "" {
		parsed, err := models.ParseDate(form.Date)
		if err != nil {
			return nil, models.NewValidationError("date: %v", err)
		}
		date = parsed
	}

	post := &models.BlogPost{
		Title:            strings.TrimSpace(form.Title),
		ShortDescription: form.ShortDescription,
		FullContent:      form.FullContent,
		Date:             date,
	}

	var stored *storage.StoredFile
	if cover != nil {
		var err error
		if stored, err = s.files.Store(cover, storage.BucketBlogs, "cover"); err != nil {
			return nil, err
		}
		post.CoverImage = stored.Path
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		s.files.Discard(stored)
		return nil, err
	}
	return post, nil
}

// Update merges fields, keyed by column, into the post. An uploaded cover
// replaces the stored one.
func (s *blogService) Update(ctx context.Context, id uint, fields map[string]any, cover *multipart.FileHeader) (*models.BlogPost, error) {
	if _, err := s.blogRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := models.ValidatePatch(models.BlogFields, fields); err != nil {
		return nil, err
	}

	var stored *storage.StoredFile
	if cover != nil {
		var err error
		if stored, err = s.files.Store(cover, storage.BucketBlogs, "cover"); err != nil {
			return nil, err
		}
		fields["cover_image"] = stored.Path
	}

	post, err := s.blogRepo.UpdateMerge(ctx, id, fields)
	if err != nil {
		s.files.Discard(stored)
		return nil, err
	}
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id uint) error {
	return s.blogRepo.Delete(ctx, id)
}
