package repositories

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// CommentRepository define a interface para persistência de comentários.
// Leituras retornam comentários com o autor hidratado.
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, id string) (*entities.Comment, error)
	Update(ctx context.Context, comment *entities.Comment) error
	Delete(ctx context.Context, id string) error
	// ListByPost retorna comentários do post, mais antigos primeiro
	ListByPost(ctx context.Context, postID string) ([]*entities.Comment, error)
	// ListAll retorna todos os comentários, mais recentes primeiro
	ListAll(ctx context.Context) ([]*entities.Comment, error)
}
