package dto

import (
	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse representa um bearer token emitido. TwoFactorRequired
// indica que o token só vale para concluir o segundo fator.
type TokenResponse struct {
	AccessToken       string `json:"access_token"`
	TokenType         string `json:"token_type"`
	TwoFactorRequired bool   `json:"two_factor_required"`
}

// NewTokenResponse cria um TokenResponse para o token emitido
func NewTokenResponse(token string, twoFactorRequired bool) TokenResponse {
	return TokenResponse{
		AccessToken:       token,
		TokenType:         "bearer",
		TwoFactorRequired: twoFactorRequired,
	}
}

// TwoFactorCodeRequest representa um código TOTP de 6 dígitos
type TwoFactorCodeRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// TwoFactorSetupResponse representa o resultado da preparação do segundo fator
type TwoFactorSetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

// ToTwoFactorSetupResponse converte o resultado do setup para a resposta
func ToTwoFactorSetupResponse(setup *services.TwoFactorSetup) TwoFactorSetupResponse {
	return TwoFactorSetupResponse{
		Secret: setup.Secret,
		QRCode: setup.QRCode,
	}
}

// ForgotPasswordRequest representa a solicitação de reset de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest representa a conclusão do reset de senha
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// MessageResponse representa uma resposta simples com mensagem
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse representa o usuário autenticado, incluindo o estado do
// segundo fator na sessão atual
type MeResponse struct {
	UserResponse
	TwoFactorVerified bool `json:"two_factor_verified"`
}

// ToMeResponse converte o usuário autenticado para MeResponse
func ToMeResponse(user *entities.User, twoFactorVerified bool) MeResponse {
	return MeResponse{
		UserResponse:      ToUserResponse(user),
		TwoFactorVerified: twoFactorVerified,
	}
}
