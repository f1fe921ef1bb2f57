package models

import "time"

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"-"`
}

type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Role     UserRole `json:"role" binding:"omitempty,enum"`
}

// UpdateUserRequest carries the optional fields of a user update. Empty
// values are left untouched.
type UpdateUserRequest struct {
	Email    string   `json:"email" binding:"omitempty,email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role" binding:"omitempty,enum"`
}

// ProjectForm holds the scalar fields of a project create. Uploaded files
// are read separately from the multipart form.
type ProjectForm struct {
	Title            string        `form:"title" binding:"required"`
	City             string        `form:"city" binding:"required"`
	Location         string        `form:"location" binding:"required"`
	Type             ProjectType   `form:"type" binding:"required,enum"`
	Configuration    string        `form:"configuration" binding:"required"`
	ShortDescription string        `form:"shortDescription" binding:"required"`
	LongDescription  string        `form:"longDescription"`
	Price            string        `form:"price" binding:"required"`
	StartingPrice    string        `form:"startingPrice"`
	Area             string        `form:"area"`
	Possession       string        `form:"possession"`
	Status           ProjectStatus `form:"status" binding:"omitempty,enum"`
	Amenities        []string      `form:"amenities"`
	Highlights       []string      `form:"highlights"`
	ReraNumber       string        `form:"reraNumber"`
	Featured         string        `form:"featured"`
}

// BlogForm holds the scalar fields of a blog post create.
type BlogForm struct {
	Title            string `form:"title" binding:"required"`
	ShortDescription string `form:"shortDescription" binding:"required"`
	FullContent      string `form:"fullContent" binding:"required"`
	Date             string `form:"date"`
}

type PageUpsertRequest struct {
	Title           *string        `json:"title"`
	Content         map[string]any `json:"content"`
	MetaDescription *string        `json:"metaDescription"`
}

type SettingsUpdateRequest struct {
	SiteTitle    string `json:"siteTitle"`
	AdminEmail   string `json:"adminEmail" binding:"omitempty,email"`
	ItemsPerPage int    `json:"itemsPerPage" binding:"omitempty,min=1,max=100"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

// Enum is implemented by closed string sets that can validate themselves.
type Enum interface {
	Valid() bool
}
