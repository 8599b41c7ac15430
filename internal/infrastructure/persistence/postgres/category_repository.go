package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	model := r.toModel(category)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}
		return err
	}

	category.CreatedAt = model.CreatedAt
	category.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	var model CategoryModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return categoryModelToEntity(&model), nil
}

func (r *CategoryRepository) NameOrSlugExists(ctx context.Context, name, slug string, excludeID string) (bool, error) {
	db := r.getDB(ctx)
	query := db.Model(&CategoryModel{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	model := r.toModel(category)

	db := r.getDB(ctx)
	err := db.Model(&CategoryModel{ID: model.ID}).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"slug":        model.Slug,
			"description": model.Description,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)

	// Posts que referenciam a categoria ficam sem categoria (nullify)
	if err := db.Model(&PostModel{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&CategoryModel{}).Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []*CategoryModel

	db := r.getDB(ctx)
	if err := db.Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, categoryModelToEntity(model))
	}
	return categories, nil
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *CategoryRepository) toModel(category *entities.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
