package entities

import "time"

// Category representa uma categoria de posts
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag representa uma tag de posts (N:N via post_tags)
type Tag struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}
