package entities

import "time"

// Post representa um artigo do blog
type Post struct {
	ID          string
	Title       string
	Content     string
	Slug        string
	IsPublished bool
	PublishedAt *time.Time
	AuthorID    string
	CategoryID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relações hidratadas
	Author   *User
	Category *Category
	Tags     []*Tag
	Editors  []*User
}

// Publish marca o post como publicado, registrando o instante da transição
func (p *Post) Publish(now time.Time) {
	p.IsPublished = true
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// Unpublish volta o post para rascunho e limpa o instante de publicação
func (p *Post) Unpublish() {
	p.IsPublished = false
	p.PublishedAt = nil
}

// Comment representa um comentário em um post
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User
}
