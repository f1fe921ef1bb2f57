package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"estate-cms/models"
	"estate-cms/testutil"
)

type RepositoryTestSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.ctx = context.Background()
}

func newProject(title string) *models.Project {
	return &models.Project{
		Title:            title,
		City:             "Pune",
		Location:         "Baner",
		Type:             models.ProjectTypeVillas,
		Configuration:    "3 BHK",
		ShortDescription: "Villas",
		Price:            "1 Cr",
		Status:           models.ProjectStatusUpcoming,
		GalleryImages:    datatypes.JSONSlice[string]{"/uploads/projects/a.png", "/uploads/projects/b.png"},
		Amenities:        datatypes.JSONSlice[string]{"Pool"},
	}
}

func (s *RepositoryTestSuite) TestCreateAssignsIDAndTimestamps() {
	repo := NewProjectRepository(s.db)
	project := newProject("Green Acres")

	s.Require().NoError(repo.Create(s.ctx, project))
	s.NotZero(project.ID)
	s.False(project.CreatedAt.IsZero())
	s.False(project.UpdatedAt.IsZero())
}

func (s *RepositoryTestSuite) TestGetByIDNotFound() {
	_, err := NewProjectRepository(s.db).GetByID(s.ctx, 42)

	var notFound models.ErrorNotFound
	s.Require().ErrorAs(err, &notFound)
	s.Equal("Project not found", notFound.Message)
}

func (s *RepositoryTestSuite) TestUpdateMergeOnlyTouchesSuppliedFields() {
	repo := NewProjectRepository(s.db)
	project := newProject("Green Acres")
	s.Require().NoError(repo.Create(s.ctx, project))

	patch := func() map[string]any {
		return map[string]any{"title": "Green Acres II", "featured": true}
	}

	once, err := repo.UpdateMerge(s.ctx, project.ID, patch())
	s.Require().NoError(err)
	twice, err := repo.UpdateMerge(s.ctx, project.ID, patch())
	s.Require().NoError(err)

	s.Equal("Green Acres II", twice.Title)
	s.True(twice.Featured)
	s.Equal("Pune", twice.City)
	s.Equal(project.GalleryImages, twice.GalleryImages)
	s.Equal(once.Title, twice.Title)
	s.Equal(once.City, twice.City)
	s.Equal(once.GalleryImages, twice.GalleryImages)
	s.Equal(once.Featured, twice.Featured)
}

func (s *RepositoryTestSuite) TestUpdateMergeUnknownID() {
	_, err := NewProjectRepository(s.db).UpdateMerge(s.ctx, 99, map[string]any{"title": "x"})

	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
}

func (s *RepositoryTestSuite) TestListRunsAFreshQuery() {
	repo := NewBlogRepository(s.db)
	s.Require().NoError(repo.Create(s.ctx, &models.BlogPost{Title: "One", ShortDescription: "s", FullContent: "f"}))

	first, err := repo.List(s.ctx, ListOptions{Order: OrderNewestFirst})
	s.Require().NoError(err)
	s.Len(first, 1)

	s.Require().NoError(repo.Create(s.ctx, &models.BlogPost{Title: "Two", ShortDescription: "s", FullContent: "f"}))

	second, err := repo.List(s.ctx, ListOptions{Order: OrderNewestFirst})
	s.Require().NoError(err)
	s.Require().Len(second, 2)
	s.Equal("Two", second[0].Title)
	s.Len(first, 1)
}

func (s *RepositoryTestSuite) TestListFilterAndCount() {
	repo := NewProjectRepository(s.db)
	featured := newProject("Featured")
	featured.Featured = true
	s.Require().NoError(repo.Create(s.ctx, featured))
	s.Require().NoError(repo.Create(s.ctx, newProject("Plain")))

	list, err := repo.List(s.ctx, ListOptions{Where: map[string]any{"featured": true}})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Featured", list[0].Title)

	total, err := repo.Count(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *RepositoryTestSuite) TestDelete() {
	repo := NewProjectRepository(s.db)
	project := newProject("Gone")
	s.Require().NoError(repo.Create(s.ctx, project))

	s.Require().NoError(repo.Delete(s.ctx, project.ID))

	var notFound models.ErrorNotFound
	s.ErrorAs(repo.Delete(s.ctx, project.ID), &notFound)
}

func (s *RepositoryTestSuite) TestUpsertByNameKeepsOneRecord() {
	repo := NewPageRepository(s.db)

	_, err := repo.UpsertByName(s.ctx, models.PageHome, map[string]any{"title": "First"})
	s.Require().NoError(err)
	page, err := repo.UpsertByName(s.ctx, models.PageHome, map[string]any{"title": "Second", "name": "about"})
	s.Require().NoError(err)

	s.Equal(models.PageHome, page.Name)
	s.Equal("Second", page.Title)

	var total int64
	s.Require().NoError(s.db.Model(&models.Page{}).Count(&total).Error)
	s.Equal(int64(1), total)
}

func (s *RepositoryTestSuite) TestListSummaries() {
	repo := NewPageRepository(s.db)
	_, err := repo.UpsertByName(s.ctx, models.PageAbout, map[string]any{
		"title":   "About",
		"content": datatypes.JSONMap{"mainHeading": "Our Story"},
	})
	s.Require().NoError(err)

	summaries, err := repo.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(models.PageAbout, summaries[0].Name)
	s.Equal("About", summaries[0].Title)
}

func (s *RepositoryTestSuite) TestUserGetByEmailIsExact() {
	repo := NewUserRepository(s.db)
	s.Require().NoError(repo.Create(s.ctx, &models.User{Email: "a@x.com", Password: "hash", Role: models.RoleAdmin}))

	_, err := repo.GetByEmail(s.ctx, "a@x.com")
	s.NoError(err)
	_, err = repo.GetByEmail(s.ctx, "A@X.COM")
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)

	exists, err := repo.ExistsWithRole(s.ctx, models.RoleAdmin)
	s.Require().NoError(err)
	s.True(exists)
	exists, err = repo.ExistsWithRole(s.ctx, models.RoleEditor)
	s.Require().NoError(err)
	s.False(exists)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestSettingGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(testutil.NewDB(t))

	first, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteTitle, first.SiteTitle)
	assert.Equal(t, models.DefaultAdminEmail, first.AdminEmail)
	assert.Equal(t, models.DefaultItemsPerPage, first.ItemsPerPage)

	updated, err := repo.Update(ctx, map[string]any{"site_title": "Estates"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Estates", updated.SiteTitle)
	assert.Equal(t, models.DefaultItemsPerPage, updated.ItemsPerPage)
}
