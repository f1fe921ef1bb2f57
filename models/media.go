package models

import "time"

type Media struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Filename     string    `json:"filename" gorm:"uniqueIndex;not null"`
	OriginalName string    `json:"originalName" gorm:"not null"`
	MimeType     string    `json:"mimeType" gorm:"not null"`
	Size         int64     `json:"size" gorm:"not null"`
	Path         string    `json:"path" gorm:"not null"`
	UploadDate   time.Time `json:"uploadDate" gorm:"index"`
}

func (Media) TableName() string { return "media" }
