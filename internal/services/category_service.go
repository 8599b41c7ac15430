package services

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/policy"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/tagging"
)

// CategoryService contém a lógica de categorias de posts
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uow:          uow,
		logger:       logger,
	}
}

// ListCategories lista todas as categorias em ordem alfabética.
// Leitura pública para usuários autenticados.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategory busca uma categoria por ID
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}
	return category, nil
}

// CategoryInput representa os dados de criação/atualização de categoria
type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
}

// CreateCategory cria uma categoria. O slug vem do campo explícito ou do
// nome; nome ou slug já usados são um conflito.
func (s *CategoryService) CreateCategory(ctx context.Context, actor *entities.User, input CategoryInput) (*entities.Category, error) {
	if !policy.CanManageContent(actor) {
		return nil, errors.ErrForbidden
	}

	slug := tagging.Slugify(input.Slug)
	if slug == "" {
		slug = tagging.Slugify(input.Name)
	}

	exists, err := s.categoryRepo.NameOrSlugExists(ctx, input.Name, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrCategoryAlreadyExists
	}

	category := &entities.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", category.ID, "slug", slug, "created_by", actor.ID)
	return category, nil
}

// UpdateCategoryInput representa uma atualização parcial de categoria.
// Campos nil não são alterados.
type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// UpdateCategory atualiza uma categoria, revalidando a unicidade de
// nome/slug contra as demais
func (s *CategoryService) UpdateCategory(ctx context.Context, actor *entities.User, id string, input UpdateCategoryInput) (*entities.Category, error) {
	if !policy.CanManageContent(actor) {
		return nil, errors.ErrForbidden
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.ErrCategoryNotFound
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = tagging.Slugify(*input.Slug)
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	exists, err := s.categoryRepo.NameOrSlugExists(ctx, category.Name, category.Slug, category.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrCategoryAlreadyExists
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category updated", "category_id", id, "updated_by", actor.ID)
	return s.categoryRepo.FindByID(ctx, id)
}

// DeleteCategory remove uma categoria; posts que a referenciam ficam sem
// categoria. Nullify e remoção acontecem na mesma transação.
func (s *CategoryService) DeleteCategory(ctx context.Context, actor *entities.User, id string) error {
	if !policy.CanManageContent(actor) {
		return errors.ErrForbidden
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.categoryRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("category deleted", "category_id", id, "deleted_by", actor.ID)
	return nil
}
