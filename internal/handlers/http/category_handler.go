package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dashboard-backend/internal/handlers/dto"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// CategoryHandler lida com requisições HTTP de categorias e tags
type CategoryHandler struct {
	categoryService *services.CategoryService
	tagService      *services.TagService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService, tagService *services.TagService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		tagService:      tagService,
	}
}

// ListCategories lista as categorias
// @Summary      Listar categorias
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/posts/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// GetCategory busca uma categoria por ID
// @Summary      Buscar categoria
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da categoria"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// CreateCategory cria uma categoria
// @Summary      Criar categoria
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateCategoryRequest  true  "Dados da categoria"
// @Success      201      {object}  dto.CategoryResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/posts/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	category, err := h.categoryService.CreateCategory(c.Request.Context(), actor, services.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateCategory atualiza uma categoria
// @Summary      Atualizar categoria
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "ID da categoria"
// @Param        request  body      dto.UpdateCategoryRequest  true  "Campos a alterar"
// @Success      200      {object}  dto.CategoryResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/posts/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), actor, c.Param("id"), services.UpdateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory remove uma categoria
// @Summary      Deletar categoria
// @Description  Posts da categoria ficam sem categoria
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da categoria"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.categoryService.DeleteCategory(c.Request.Context(), actor, c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTags lista o vocabulário de tags
// @Summary      Listar tags
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TagResponse
// @Router       /api/posts/tags [get]
func (h *CategoryHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}
