package dto

import (
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// CreatePostRequest representa a requisição para criar um post
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required,min=1,max=200"`
	Content    string   `json:"content" binding:"required"`
	Slug       string   `json:"slug" binding:"omitempty,max=200"`
	CategoryID *string  `json:"category_id" binding:"omitempty,uuid"`
	TagIDs     []string `json:"tag_ids" binding:"omitempty,dive,uuid"`
	TagNames   []string `json:"tag_names" binding:"omitempty,dive,min=1,max=50"`
}

// UpdatePostRequest representa a atualização parcial de um post.
// Campos omitidos não são alterados; category_id vazio limpa a categoria;
// tag_ids/tag_names presentes (mesmo vazios) substituem o conjunto de tags.
type UpdatePostRequest struct {
	Title      *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Content    *string   `json:"content"`
	Slug       *string   `json:"slug" binding:"omitempty,max=200"`
	CategoryID *string   `json:"category_id"`
	TagIDs     *[]string `json:"tag_ids" binding:"omitempty,dive,uuid"`
	TagNames   *[]string `json:"tag_names" binding:"omitempty,dive,min=1,max=50"`
}

// TagResponse representa uma tag
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTagResponse converte uma entidade Tag para TagResponse
func ToTagResponse(tag *entities.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		Slug:      tag.Slug,
		CreatedAt: tag.CreatedAt,
	}
}

// ToTagResponses converte uma lista de tags para TagResponse
func ToTagResponses(tags []*entities.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = ToTagResponse(tag)
	}
	return responses
}

// PostResponse representa um post com autor, categoria, tags e editores
// hidratados
type PostResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Slug        string            `json:"slug"`
	IsPublished bool              `json:"is_published"`
	PublishedAt *time.Time        `json:"published_at"`
	AuthorID    string            `json:"author_id"`
	Author      *UserSummary      `json:"author,omitempty"`
	CategoryID  *string           `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Tags        []TagResponse     `json:"tags"`
	Editors     []UserSummary     `json:"editors"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToPostResponse converte uma entidade Post para PostResponse
func ToPostResponse(post *entities.Post) PostResponse {
	response := PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Slug:        post.Slug,
		IsPublished: post.IsPublished,
		PublishedAt: post.PublishedAt,
		AuthorID:    post.AuthorID,
		Author:      ToUserSummary(post.Author),
		CategoryID:  post.CategoryID,
		Tags:        ToTagResponses(post.Tags),
		Editors:     make([]UserSummary, 0, len(post.Editors)),
	}

	if post.Category != nil {
		category := ToCategoryResponse(post.Category)
		response.Category = &category
	}
	for _, editor := range post.Editors {
		response.Editors = append(response.Editors, *ToUserSummary(editor))
	}

	response.CreatedAt = post.CreatedAt
	response.UpdatedAt = post.UpdatedAt
	return response
}

// ToPostResponses converte uma lista de posts para PostResponse
func ToPostResponses(posts []*entities.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
