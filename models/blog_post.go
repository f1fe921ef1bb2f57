package models

import "time"

type BlogPost struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Title            string    `json:"title" gorm:"not null"`
	ShortDescription string    `json:"shortDescription" gorm:"not null"`
	FullContent      string    `json:"fullContent" gorm:"type:text;not null"`
	CoverImage       string    `json:"coverImage"`
	Date             time.Time `json:"date"`
	CreatedAt        time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
