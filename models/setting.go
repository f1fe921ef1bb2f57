package models

import "time"

const (
	DefaultSiteTitle    = "Ecomom CMS"
	DefaultAdminEmail   = "admin@example.com"
	DefaultItemsPerPage = 10
)

// Setting is a singleton row holding site-wide options.
type Setting struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	SiteTitle    string    `json:"siteTitle" gorm:"not null"`
	AdminEmail   string    `json:"adminEmail" gorm:"not null"`
	ItemsPerPage int       `json:"itemsPerPage" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func DefaultSetting() Setting {
	return Setting{
		SiteTitle:    DefaultSiteTitle,
		AdminEmail:   DefaultAdminEmail,
		ItemsPerPage: DefaultItemsPerPage,
	}
}
