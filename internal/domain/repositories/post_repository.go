package repositories

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// PostRepository define a interface para persistência de posts.
// Leituras retornam posts hidratados (autor, categoria, tags, editores).
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) error
	FindByID(ctx context.Context, id string) (*entities.Post, error)
	// SlugExists verifica unicidade global do slug, opcionalmente ignorando um post
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
	Update(ctx context.Context, post *entities.Post) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters PostFilters) ([]*entities.Post, error)

	// LinkTags associa tags ao post (post_tags); ids já deduplicados pelo serviço
	LinkTags(ctx context.Context, postID string, tagIDs []string) error
	// ClearTags remove todas as associações de tag do post
	ClearTags(ctx context.Context, postID string) error
	// AddEditor registra que um editor não-autor modificou o post (idempotente)
	AddEditor(ctx context.Context, postID, userID string) error
}

// PostFilters contém filtros para listagem de posts
type PostFilters struct {
	Search        string // Substring sobre title/content (case-insensitive)
	PublishedOnly bool
	Skip          int
	Limit         int // Default: 100
}
