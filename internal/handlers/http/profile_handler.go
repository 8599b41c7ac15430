package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/handlers/dto"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// ProfileHandler lida com requisições HTTP de perfis
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetMyProfile retorna o perfil do usuário autenticado
// @Summary      Meu perfil
// @Description  Retorna o perfil do usuário autenticado, criando um perfil padrão na primeira leitura
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	h.respondProfile(c, actor.ID)
}

// UpdateMyProfile atualiza o perfil do usuário autenticado
// @Summary      Atualizar meu perfil
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.UpdateProfileRequest  true  "Campos a alterar"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/profiles/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	h.updateProfile(c, actor.ID)
}

// GetProfile retorna o perfil de um usuário (somente admin)
// @Summary      Perfil de um usuário
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "ID do usuário"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/profiles/{user_id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	targetID := c.Param("user_id")

	if !actor.IsAdmin && actor.ID != targetID {
		dto.RespondError(c, errors.ErrForbidden)
		return
	}

	h.respondProfile(c, targetID)
}

// UpdateProfile atualiza o perfil de um usuário (dono ou admin)
// @Summary      Atualizar perfil de um usuário
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string                    true  "ID do usuário"
// @Param        request  body      dto.UpdateProfileRequest  true  "Campos a alterar"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/profiles/{user_id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	h.updateProfile(c, c.Param("user_id"))
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID string) {
	profile, user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile, user))
}

func (h *ProfileHandler) updateProfile(c *gin.Context, userID string) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	profile, user, err := h.profileService.UpdateProfile(c.Request.Context(), actor, userID, services.UpdateProfileInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Bio:             req.Bio,
		JobTitle:        req.JobTitle,
		Location:        req.Location,
		ProfileImageURL: req.ProfileImageURL,
		Country:         req.Country,
		CityState:       req.CityState,
		PostalCode:      req.PostalCode,
		TaxID:           req.TaxID,
		FacebookURL:     req.FacebookURL,
		TwitterURL:      req.TwitterURL,
		LinkedinURL:     req.LinkedinURL,
		InstagramURL:    req.InstagramURL,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile, user))
}
