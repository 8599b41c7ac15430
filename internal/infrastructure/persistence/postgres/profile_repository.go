package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	model := r.toModel(profile)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	var model ProfileModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	model := r.toModel(profile)

	db := r.getDB(ctx)
	return db.Model(&ProfileModel{ID: model.ID}).Select("*").Omit("id", "user_id", "created_at").Updates(model).Error
}

func (r *ProfileRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *ProfileRepository) toModel(profile *entities.Profile) *ProfileModel {
	return &ProfileModel{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Phone:           profile.Phone,
		Bio:             profile.Bio,
		JobTitle:        profile.JobTitle,
		Location:        profile.Location,
		ProfileImageURL: profile.ProfileImageURL,
		Country:         profile.Country,
		CityState:       profile.CityState,
		PostalCode:      profile.PostalCode,
		TaxID:           profile.TaxID,
		FacebookURL:     profile.FacebookURL,
		TwitterURL:      profile.TwitterURL,
		LinkedinURL:     profile.LinkedinURL,
		InstagramURL:    profile.InstagramURL,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func (r *ProfileRepository) toEntity(model *ProfileModel) *entities.Profile {
	return &entities.Profile{
		ID:              model.ID,
		UserID:          model.UserID,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		Phone:           model.Phone,
		Bio:             model.Bio,
		JobTitle:        model.JobTitle,
		Location:        model.Location,
		ProfileImageURL: model.ProfileImageURL,
		Country:         model.Country,
		CityState:       model.CityState,
		PostalCode:      model.PostalCode,
		TaxID:           model.TaxID,
		FacebookURL:     model.FacebookURL,
		TwitterURL:      model.TwitterURL,
		LinkedinURL:     model.LinkedinURL,
		InstagramURL:    model.InstagramURL,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
