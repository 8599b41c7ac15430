package dto

import (
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição administrativa para criar um usuário
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	IsAdmin  bool   `json:"is_admin"`
	IsEditor bool   `json:"is_editor"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos omitidos não são alterados.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	IsAdmin  *bool   `json:"is_admin"`
	IsEditor *bool   `json:"is_editor"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	IsActive         bool      `json:"is_active"`
	IsVerified       bool      `json:"is_verified"`
	IsAdmin          bool      `json:"is_admin"`
	IsEditor         bool      `json:"is_editor"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email.String(),
		FullName:         user.FullName,
		IsActive:         user.IsActive,
		IsVerified:       user.IsVerified,
		IsAdmin:          user.IsAdmin,
		IsEditor:         user.IsEditor,
		TwoFactorEnabled: user.TwoFactorEnabled,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// UserSummary representa a visão resumida de um usuário dentro de outra
// resposta (autor de post, autor de comentário, editores)
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ToUserSummary converte uma entidade User para UserSummary
func ToUserSummary(user *entities.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:       user.ID,
		Email:    user.Email.String(),
		FullName: user.FullName,
	}
}
