package repositories

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	// NameOrSlugExists verifica colisão de nome/slug, opcionalmente ignorando uma categoria
	NameOrSlugExists(ctx context.Context, name, slug string, excludeID string) (bool, error)
	Update(ctx context.Context, category *entities.Category) error
	// Delete remove a categoria; posts que a referenciam ficam sem categoria
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Category, error)
}

// TagRepository define a interface para persistência de tags
type TagRepository interface {
	Create(ctx context.Context, tag *entities.Tag) error
	FindByID(ctx context.Context, id string) (*entities.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Tag, error)
	List(ctx context.Context) ([]*entities.Tag, error)
}
