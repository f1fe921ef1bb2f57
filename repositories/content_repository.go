package repositories

import (
	"gorm.io/gorm"

	"estate-cms/models"
)

type (
	ProjectRepository = Repository[models.Project]
	BlogRepository    = Repository[models.BlogPost]
	MediaRepository   = Repository[models.Media]
)

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return NewRepository[models.Project](db, "Project")
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return NewRepository[models.BlogPost](db, "Blog post")
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return NewRepository[models.Media](db, "Media")
}
