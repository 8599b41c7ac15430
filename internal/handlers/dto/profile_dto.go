package dto

import (
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// UpdateProfileRequest representa a atualização parcial de perfil.
// Campos omitidos não são alterados.
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name" binding:"omitempty,max=100"`
	LastName        *string `json:"last_name" binding:"omitempty,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,max=30"`
	Bio             *string `json:"bio" binding:"omitempty,max=1000"`
	JobTitle        *string `json:"job_title" binding:"omitempty,max=100"`
	Location        *string `json:"location" binding:"omitempty,max=100"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,max=500"`
	Country         *string `json:"country" binding:"omitempty,max=100"`
	CityState       *string `json:"city_state" binding:"omitempty,max=100"`
	PostalCode      *string `json:"postal_code" binding:"omitempty,max=20"`
	TaxID           *string `json:"tax_id" binding:"omitempty,max=30"`
	FacebookURL     *string `json:"facebook_url" binding:"omitempty,max=500"`
	TwitterURL      *string `json:"twitter_url" binding:"omitempty,max=500"`
	LinkedinURL     *string `json:"linkedin_url" binding:"omitempty,max=500"`
	InstagramURL    *string `json:"instagram_url" binding:"omitempty,max=500"`
}

// ProfileResponse representa um perfil com os dados de conta do dono
type ProfileResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Phone           *string `json:"phone"`
	Bio             *string `json:"bio"`
	JobTitle        *string `json:"job_title"`
	Location        *string `json:"location"`
	ProfileImageURL *string `json:"profile_image_url"`

	Country    *string `json:"country"`
	CityState  *string `json:"city_state"`
	PostalCode *string `json:"postal_code"`
	TaxID      *string `json:"tax_id"`

	FacebookURL  *string `json:"facebook_url"`
	TwitterURL   *string `json:"twitter_url"`
	LinkedinURL  *string `json:"linkedin_url"`
	InstagramURL *string `json:"instagram_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProfileResponse converte um perfil e seu dono para ProfileResponse
func ToProfileResponse(profile *entities.Profile, user *entities.User) ProfileResponse {
	return ProfileResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Email:           user.Email.String(),
		FullName:        user.FullName,
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
