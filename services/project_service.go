package services

import (
	"context"
	"mime/multipart"
	"strings"

	"gorm.io/datatypes"

	"estate-cms/models"
	"estate-cms/repositories"
	"estate-cms/storage"
)

// MaxGalleryUploads caps the gallery files accepted by one request.
const MaxGalleryUploads = 10

// ProjectUploads are the files attached to a project create or update.
type ProjectUploads struct {
	MainImage   *multipart.FileHeader
	BannerImage *multipart.FileHeader
	Gallery     []*multipart.FileHeader
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	ListPage(ctx context.Context, page, limit int) ([]models.Project, int64, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	Featured(ctx context.Context, limit int) ([]models.Project, error)
	LatestFeatured(ctx context.Context) (*models.Project, error)
	Create(ctx context.Context, form models.ProjectForm, uploads ProjectUploads) (*models.Project, error)
	Update(ctx context.Context, id uint, fields map[string]any, uploads ProjectUploads) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	files       FileStore
}

func NewProjectService(projectRepo repositories.ProjectRepository, files FileStore) ProjectService {
	return &projectService{projectRepo: projectRepo, files: files}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx, repositories.ListOptions{Order: repositories.OrderNewestFirst})
}

func (s *projectService) ListPage(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	total, err := s.projectRepo.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	projects, err := s.projectRepo.List(ctx, repositories.ListOptions{
		Order:  repositories.OrderNewestFirst,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) Featured(ctx context.Context, limit int) ([]models.Project, error) {
	return s.projectRepo.List(ctx, repositories.ListOptions{
		Where: map[string]any{"featured": true},
		Order: repositories.OrderNewestFirst,
		Limit: limit,
	})
}

func (s *projectService) LatestFeatured(ctx context.Context) (*models.Project, error) {
	return s.projectRepo.First(ctx, repositories.ListOptions{
		Where: map[string]any{"featured": true},
		Order: repositories.OrderNewestFirst,
	})
}

func (s *projectService) Create(ctx context.Context, form models.ProjectForm, uploads ProjectUploads) (*models.Project, error) {
	if !form.Type.Valid() {
		return nil, models.NewValidationError("type: %q is not an allowed value", form.Type)
	}
	status := form.Status
	if status == "" {
		status = models.ProjectStatusUpcoming
	}
	if !status.Valid() {
		return nil, models.NewValidationError("status: %q is not an allowed value", status)
	}

	stored, err := s.storeUploads(uploads)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:            strings.TrimSpace(form.Title),
		City:             strings.TrimSpace(form.City),
		Location:         strings.TrimSpace(form.Location),
		Type:             form.Type,
		Configuration:    form.Configuration,
		ShortDescription: form.ShortDescription,
		LongDescription:  form.LongDescription,
		Price:            form.Price,
		StartingPrice:    form.StartingPrice,
		Area:             form.Area,
		Possession:       form.Possession,
		Status:           status,
		Amenities:        models.SplitList(form.Amenities),
		Highlights:       models.SplitList(form.Highlights),
		GalleryImages:    stored.galleryPaths(),
		ReraNumber:       form.ReraNumber,
		Featured:         models.ParseBool(form.Featured),
	}
	if stored.main != nil {
		project.MainImage = stored.main.Path
	}
	if stored.banner != nil {
		project.BannerImage = stored.banner.Path
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.files.Discard(stored.all()...)
		return nil, err
	}
	return project, nil
}

// Update merges fields, keyed by column, into the project. Newly uploaded
// gallery files are appended to the gallery: to the list supplied in fields
// when there is one, otherwise to the stored list.
func (s *projectService) Update(ctx context.Context, id uint, fields map[string]any, uploads ProjectUploads) (*models.Project, error) {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidatePatch(models.ProjectFields, fields); err != nil {
		return nil, err
	}

	stored, err := s.storeUploads(uploads)
	if err != nil {
		return nil, err
	}
	if stored.main != nil {
		fields["main_image"] = stored.main.Path
	}
	if stored.banner != nil {
		fields["banner_image"] = stored.banner.Path
	}
	if len(stored.gallery) > 0 {
		gallery := []string(existing.GalleryImages)
		if supplied, ok := fields["gallery_images"].([]string); ok {
			gallery = supplied
		}
		fields["gallery_images"] = append(append([]string{}, gallery...), stored.galleryPaths()...)
	}

	project, err := s.projectRepo.UpdateMerge(ctx, id, jsonLists(models.ProjectFields, fields))
	if err != nil {
		s.files.Discard(stored.all()...)
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	return s.projectRepo.Delete(ctx, id)
}

type projectFiles struct {
	main    *storage.StoredFile
	banner  *storage.StoredFile
	gallery []*storage.StoredFile
}

func (f projectFiles) all() []*storage.StoredFile {
	return append([]*storage.StoredFile{f.main, f.banner}, f.gallery...)
}

func (f projectFiles) galleryPaths() datatypes.JSONSlice[string] {
	paths := datatypes.JSONSlice[string]{}
	for _, g := range f.gallery {
		paths = append(paths, g.Path)
	}
	return paths
}

func (s *projectService) storeUploads(uploads ProjectUploads) (projectFiles, error) {
	var stored projectFiles
	if len(uploads.Gallery) > MaxGalleryUploads {
		return stored, models.NewValidationError("At most %d gallery images can be uploaded at once", MaxGalleryUploads)
	}

	var err error
	if uploads.MainImage != nil {
		if stored.main, err = s.files.Store(uploads.MainImage, storage.BucketProjects, "main"); err != nil {
			return projectFiles{}, err
		}
	}
	if uploads.BannerImage != nil {
		if stored.banner, err = s.files.Store(uploads.BannerImage, storage.BucketProjects, "banner"); err != nil {
			s.files.Discard(stored.main)
			return projectFiles{}, err
		}
	}
	if len(uploads.Gallery) > 0 {
		if stored.gallery, err = s.files.StoreAll(uploads.Gallery, storage.BucketProjects, "gallery"); err != nil {
			s.files.Discard(stored.main, stored.banner)
			return projectFiles{}, err
		}
	}
	return stored, nil
}

// jsonLists converts the list-valued columns of a merge map into JSON
// column values.
func jsonLists(specs []models.FieldSpec, fields map[string]any) map[string]any {
	for _, spec := range specs {
		if spec.Kind != models.KindList {
			continue
		}
		if list, ok := fields[spec.Column].([]string); ok {
			fields[spec.Column] = datatypes.JSONSlice[string](list)
		}
	}
	return fields
}
