package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
)

// PostRepository implementa repositories.PostRepository
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository cria um novo PostRepository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	model := r.toModel(post)

	db := r.getDB(ctx)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugAlreadyExists
		}
		return err
	}

	post.CreatedAt = model.CreatedAt
	post.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	var model PostModel

	db := r.getDB(ctx)
	err := db.Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Editors").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PostRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	db := r.getDB(ctx)
	query := db.Model(&PostModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	model := r.toModel(post)

	db := r.getDB(ctx)
	err := db.Model(&PostModel{ID: model.ID}).
		Updates(map[string]interface{}{
			"title":        model.Title,
			"content":      model.Content,
			"slug":         model.Slug,
			"is_published": model.IsPublished,
			"published_at": model.PublishedAt,
			"category_id":  model.CategoryID,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)

	// Remover dependentes antes do post; o serviço envolve tudo em uma transação
	if err := db.Where("post_id = ?", id).Delete(&PostTagModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("post_id = ?", id).Delete(&PostEditorModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("post_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&PostModel{}).Error
}

func (r *PostRepository) List(ctx context.Context, filters repositories.PostFilters) ([]*entities.Post, error) {
	var models []*PostModel

	db := r.getDB(ctx)
	query := db.Model(&PostModel{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Preload("Editors")

	if filters.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	query = query.Order("created_at DESC").Offset(filters.Skip).Limit(limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(models))
	for _, model := range models {
		post, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *PostRepository) LinkTags(ctx context.Context, postID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]PostTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, PostTagModel{PostID: postID, TagID: tagID})
	}

	db := r.getDB(ctx)
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *PostRepository) ClearTags(ctx context.Context, postID string) error {
	db := r.getDB(ctx)
	return db.Where("post_id = ?", postID).Delete(&PostTagModel{}).Error
}

func (r *PostRepository) AddEditor(ctx context.Context, postID, userID string) error {
	db := r.getDB(ctx)
	row := PostEditorModel{PostID: postID, UserID: userID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (r *PostRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *PostRepository) toModel(post *entities.Post) *PostModel {
	return &PostModel{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Slug:        post.Slug,
		IsPublished: post.IsPublished,
		PublishedAt: post.PublishedAt,
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func (r *PostRepository) toEntity(model *PostModel) (*entities.Post, error) {
	post := &entities.Post{
		ID:          model.ID,
		Title:       model.Title,
		Content:     model.Content,
		Slug:        model.Slug,
		IsPublished: model.IsPublished,
		PublishedAt: model.PublishedAt,
		AuthorID:    model.AuthorID,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if model.Author.ID != "" {
		author, err := userModelToEntity(&model.Author)
		if err != nil {
			return nil, err
		}
		post.Author = author
	}

	if model.Category != nil {
		post.Category = categoryModelToEntity(model.Category)
	}

	post.Tags = make([]*entities.Tag, 0, len(model.Tags))
	for i := range model.Tags {
		post.Tags = append(post.Tags, tagModelToEntity(&model.Tags[i]))
	}

	post.Editors = make([]*entities.User, 0, len(model.Editors))
	for i := range model.Editors {
		editor, err := userModelToEntity(&model.Editors[i])
		if err != nil {
			return nil, err
		}
		post.Editors = append(post.Editors, editor)
	}

	return post, nil
}

// userModelToEntity converte um UserModel aninhado em relações hidratadas
func userModelToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:               model.ID,
		Email:            email,
		FullName:         model.FullName,
		IsActive:         model.IsActive,
		IsVerified:       model.IsVerified,
		IsAdmin:          model.IsAdmin,
		IsEditor:         model.IsEditor,
		TwoFactorEnabled: model.TwoFactorEnabled,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}, nil
}

func categoryModelToEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func tagModelToEntity(model *TagModel) *entities.Tag {
	return &entities.Tag{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      model.Slug,
		CreatedAt: model.CreatedAt,
	}
}
