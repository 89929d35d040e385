package models

import "gorm.io/gorm"

// User represents a registered user of the blog list.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Name         string `json:"name" gorm:"type:varchar(255)"`
	PasswordHash string `gorm:"type:varchar(255)"` // No json tag for security
	Blogs        []Blog `json:"blogs" gorm:"foreignKey:UserID"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UserBlogRef is the reduced blog view embedded in a user response.
type UserBlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UserResponse is the outward shape of a User: a string id, the owned
// blogs, and none of the storage bookkeeping or the password hash.
type UserResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Blogs    []UserBlogRef `json:"blogs"`
}

// ToResponse maps a stored User to its display shape.
func (u *User) ToResponse() UserResponse {
	blogs := make([]UserBlogRef, 0, len(u.Blogs))
	for _, b := range u.Blogs {
		blogs = append(blogs, UserBlogRef{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Blogs:    blogs,
	}
}
