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

// TagRepository implementa repositories.TagRepository
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository cria um novo TagRepository
func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *entities.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	model := &TagModel{
		ID:        tag.ID,
		Name:      tag.Name,
		Slug:      tag.Slug,
		CreatedAt: tag.CreatedAt,
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugAlreadyExists
		}
		return err
	}

	tag.CreatedAt = model.CreatedAt
	return nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*entities.Tag, error) {
	var model TagModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return tagModelToEntity(&model), nil
}

func (r *TagRepository) FindBySlug(ctx context.Context, slug string) (*entities.Tag, error) {
	var model TagModel

	db := r.getDB(ctx)
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return tagModelToEntity(&model), nil
}

func (r *TagRepository) List(ctx context.Context) ([]*entities.Tag, error) {
	var models []*TagModel

	db := r.getDB(ctx)
	if err := db.Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	tags := make([]*entities.Tag, 0, len(models))
	for _, model := range models {
		tags = append(tags, tagModelToEntity(model))
	}
	return tags, nil
}

func (r *TagRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
