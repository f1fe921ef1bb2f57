package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectType string

const (
	ProjectTypeApartments ProjectType = "Apartments"
	ProjectTypeVillas     ProjectType = "Villas"
	ProjectTypePlots      ProjectType = "Plots"
	ProjectTypeCommercial ProjectType = "Commercial"
)

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeApartments, ProjectTypeVillas, ProjectTypePlots, ProjectTypeCommercial:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusOngoing     ProjectStatus = "Ongoing"
	ProjectStatusCompleted   ProjectStatus = "Completed"
	ProjectStatusUpcoming    ProjectStatus = "Upcoming"
	ProjectStatusReadyToMove ProjectStatus = "Ready to Move"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusUpcoming, ProjectStatusReadyToMove:
		return true
	}
	return false
}

type Project struct {
	ID               uint                        `json:"id" gorm:"primarykey"`
	Title            string                      `json:"title" gorm:"not null"`
	City             string                      `json:"city" gorm:"not null"`
	Location         string                      `json:"location" gorm:"not null"`
	Type             ProjectType                 `json:"type" gorm:"type:varchar(32);not null"`
	Configuration    string                      `json:"configuration" gorm:"not null"`
	ShortDescription string                      `json:"shortDescription" gorm:"not null"`
	LongDescription  string                      `json:"longDescription" gorm:"type:text"`
	MainImage        string                      `json:"mainImage"`
	BannerImage      string                      `json:"bannerImage"`
	GalleryImages    datatypes.JSONSlice[string] `json:"galleryImages"`
	Price            string                      `json:"price" gorm:"not null"`
	StartingPrice    string                      `json:"startingPrice"`
	Area             string                      `json:"area"`
	Possession       string                      `json:"possession"`
	Status           ProjectStatus               `json:"status" gorm:"type:varchar(32);not null"`
	Amenities        datatypes.JSONSlice[string] `json:"amenities"`
	Highlights       datatypes.JSONSlice[string] `json:"highlights"`
	ReraNumber       string                      `json:"reraNumber"`
	Featured         bool                        `json:"featured" gorm:"index"`
	CreatedAt        time.Time                   `json:"createdAt" gorm:"index"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}
