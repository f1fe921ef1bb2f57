package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"estate-cms/models"
	"estate-cms/repositories"
	"estate-cms/storage"
)

type MediaService interface {
	List(ctx context.Context) ([]models.Media, error)
	Get(ctx context.Context, id uint) (*models.Media, error)
	Upload(ctx context.Context, fh *multipart.FileHeader) (*models.Media, error)
	Delete(ctx context.Context, id uint) error
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
	files     FileStore
	log       zerolog.Logger
}

func NewMediaService(mediaRepo repositories.MediaRepository, files FileStore, log zerolog.Logger) MediaService {
	return &mediaService{mediaRepo: mediaRepo, files: files, log: log}
}

func (s *mediaService) List(ctx context.Context) ([]models.Media, error) {
	return s.mediaRepo.List(ctx, repositories.ListOptions{Order: "upload_date desc, id desc"})
}

func (s *mediaService) Get(ctx context.Context, id uint) (*models.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

// Upload stores the file and records its metadata. The file is removed again
// if the record cannot be written.
func (s *mediaService) Upload(ctx context.Context, fh *multipart.FileHeader) (*models.Media, error) {
	stored, err := s.files.Store(fh, storage.BucketMedia, "media")
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		Path:         stored.Path,
		UploadDate:   time.Now(),
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		s.files.Discard(stored)
		return nil, err
	}
	return media, nil
}

// Delete removes the stored file first and the record only once the file is
// gone. If the file cannot be removed, including when it is already missing,
// the record is kept and an error is returned.
func (s *mediaService) Delete(ctx context.Context, id uint) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Remove(media.Path); err != nil {
		s.log.Error().Err(err).Uint("media_id", id).Str("path", media.Path).Msg("failed to delete media file")
		return models.ErrorInternalServer{Message: "Failed to delete file from server.", Err: err}
	}

	return s.mediaRepo.Delete(ctx, id)
}
