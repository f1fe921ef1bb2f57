package models

import (
	"time"

	"gorm.io/datatypes"
)

type PageName string

const (
	PageHome     PageName = "home"
	PageAbout    PageName = "about"
	PageContact  PageName = "contact"
	PageProjects PageName = "projects"
	PageBlog     PageName = "blog"
)

// PageNames lists every page the site knows about, in menu order.
var PageNames = []PageName{PageHome, PageAbout, PageContact, PageProjects, PageBlog}

func (n PageName) Valid() bool {
	for _, name := range PageNames {
		if n == name {
			return true
		}
	}
	return false
}

// Page is the editable copy of one of the fixed site pages. Content is an
// open document whose keys are interpreted by the templates.
type Page struct {
	ID              uint              `json:"id" gorm:"primarykey"`
	Name            PageName          `json:"name" gorm:"type:varchar(16);uniqueIndex;not null"`
	Title           string            `json:"title" gorm:"not null"`
	Content         datatypes.JSONMap `json:"content"`
	MetaDescription string            `json:"metaDescription"`
	LastUpdated     time.Time         `json:"lastUpdated"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PageSummary is the listing projection of a Page.
type PageSummary struct {
	Name        PageName  `json:"name"`
	Title       string    `json:"title"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// ContentString returns the string stored under key, or "".
func (p *Page) ContentString(key string) string {
	if p == nil || p.Content == nil {
		return ""
	}
	if s, ok := p.Content[key].(string); ok {
		return s
	}
	return ""
}
