package models

import "gorm.io/gorm"

// Blog represents a single blog entry in the list.
// UserID is nil when the entry was created without an authenticated
// caller, which is an allowed state.
type Blog struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string  `json:"title" validate:"required"`
	Author     string  `json:"author"`
	URL        string  `json:"url" validate:"required"`
	Likes      int     `json:"likes" validate:"gte=0"`
	UserID     *string `json:"user" gorm:"type:varchar(36)"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// BlogResponse is the outward shape of a Blog: a string id and the
// domain fields only, no storage bookkeeping.
type BlogResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	URL    string  `json:"url"`
	Likes  int     `json:"likes"`
	User   *string `json:"user"`
}

// ToResponse maps a stored Blog to its display shape.
func (b *Blog) ToResponse() BlogResponse {
	return BlogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User:   b.UserID,
	}
}
