package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// CommentRepository implementa repositories.CommentRepository
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository cria um novo CommentRepository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	model := &CommentModel{
		ID:      comment.ID,
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}

	db := r.getDB(ctx)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	comment.CreatedAt = model.CreatedAt
	comment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*entities.Comment, error) {
	var model CommentModel

	db := r.getDB(ctx)
	if err := db.Preload("User").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *CommentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	db := r.getDB(ctx)
	return db.Model(&CommentModel{ID: comment.ID}).Update("content", comment.Content).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&CommentModel{}).Error
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*entities.Comment, error) {
	var models []*CommentModel

	db := r.getDB(ctx)
	err := db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *CommentRepository) ListAll(ctx context.Context) ([]*entities.Comment, error) {
	var models []*CommentModel

	db := r.getDB(ctx)
	err := db.Preload("User").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *CommentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *CommentRepository) toEntity(model *CommentModel) (*entities.Comment, error) {
	comment := &entities.Comment{
		ID:        model.ID,
		PostID:    model.PostID,
		UserID:    model.UserID,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.User.ID != "" {
		user, err := userModelToEntity(&model.User)
		if err != nil {
			return nil, err
		}
		comment.User = user
	}

	return comment, nil
}

func (r *CommentRepository) toEntities(models []*CommentModel) ([]*entities.Comment, error) {
	comments := make([]*entities.Comment, 0, len(models))
	for _, model := range models {
		comment, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
