package services

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// TagService expõe a leitura do vocabulário de tags. Tags nascem da
// criação/edição de posts, nunca por endpoint próprio.
type TagService struct {
	tagRepo repositories.TagRepository
	logger  ports.Logger
}

// NewTagService cria um novo TagService
func NewTagService(tagRepo repositories.TagRepository, logger ports.Logger) *TagService {
	return &TagService{tagRepo: tagRepo, logger: logger}
}

// ListTags lista todas as tags em ordem alfabética
func (s *TagService) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	return s.tagRepo.List(ctx)
}
