package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dashboard-backend/internal/handlers/dto"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registra uma nova conta
// @Summary      Cadastro de usuário
// @Description  Cria uma conta comum (sem papéis de editor/admin)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignupRequest  true  "Dados de cadastro"
// @Success      201      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login autentica e emite um bearer token
// @Summary      Login
// @Description  Verifica credenciais e emite um token; contas com dois fatores recebem um token pendente do segundo passo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest  true  "Credenciais"
// @Success      200      {object}  dto.TokenResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	token, twoFactorRequired, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(token, twoFactorRequired))
}

// Me retorna o usuário autenticado
// @Summary      Usuário atual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	claims := middleware.CurrentClaims(c)

	verified := claims != nil && !claims.PendingTwoFactor()
	c.JSON(http.StatusOK, dto.ToMeResponse(user, verified))
}

// SetupTwoFactor prepara o segundo fator da conta
// @Summary      Preparar dois fatores
// @Description  Gera um segredo TOTP e o QR de provisionamento; o segundo fator só passa a valer após a confirmação
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TwoFactorSetupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/setup [post]
func (h *AuthHandler) SetupTwoFactor(c *gin.Context) {
	user := middleware.CurrentUser(c)

	setup, err := h.authService.SetupTwoFactor(c.Request.Context(), user)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTwoFactorSetupResponse(setup))
}

// EnableTwoFactor confirma e habilita o segundo fator
// @Summary      Habilitar dois fatores
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.TwoFactorCodeRequest  true  "Código TOTP"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/enable [post]
func (h *AuthHandler) EnableTwoFactor(c *gin.Context) {
	var req dto.TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.EnableTwoFactor(c.Request.Context(), user, req.Code); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.two_factor_enabled")})
}

// VerifyTwoFactor conclui o login com o código TOTP
// @Summary      Verificar dois fatores
// @Description  Troca o token pendente por um token totalmente verificado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.TwoFactorCodeRequest  true  "Código TOTP"
// @Success      200      {object}  dto.TokenResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/verify [post]
func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	var req dto.TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	token, err := h.authService.VerifyTwoFactor(c.Request.Context(), user, req.Code)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(token, false))
}

// ForgotPassword inicia o reset de senha
// @Summary      Esqueci minha senha
// @Description  Gera um token de reset com validade de 1 hora; a resposta não revela se o email existe
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ForgotPasswordRequest  true  "Email da conta"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.reset_requested")})
}

// ResetPassword conclui o reset de senha
// @Summary      Redefinir senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ResetPasswordRequest  true  "Token e nova senha"
// @Success      200      {object}  dto.MessageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.password_reset")})
}
