package models

import "time"

// Post represents a social post with embedded likes and comments.
type Post struct {
	ID       int       `json:"id" validate:"gte=0"`
	Text     string    `json:"text" validate:"required,min=10,max=300"`
	Name     string    `json:"name,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	User     string    `json:"user" validate:"required"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date" validate:"required"`
}

// Like marks a single user's like on a post.
type Like struct {
	User string `json:"user" validate:"required"`
}

// Comment represents a comment embedded in a post.
type Comment struct {
	ID     string    `json:"id" validate:"required"`
	Text   string    `json:"text" validate:"required,min=10,max=300"`
	Name   string    `json:"name,omitempty"`
	Avatar string    `json:"avatar,omitempty"`
	User   string    `json:"user" validate:"required"`
	Date   time.Time `json:"date" validate:"required"`
}
