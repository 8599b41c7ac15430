package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dashboard-backend/internal/handlers/dto"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// PostHandler lida com requisições HTTP de posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler cria um novo PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts lista posts
// @Summary      Listar posts
// @Description  Lista posts, mais recentes primeiro; quem não é editor/admin só vê publicados
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        search          query     string  false  "Busca por título ou conteúdo"
// @Param        published_only  query     bool    false  "Somente publicados"
// @Param        skip            query     int     false  "Offset da paginação"
// @Param        limit           query     int     false  "Limite da paginação"
// @Success      200             {array}   dto.PostResponse
// @Router       /api/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	posts, err := h.postService.ListPosts(c.Request.Context(), actor, services.ListPostsInput{
		Search:        c.Query("search"),
		PublishedOnly: c.Query("published_only") == "true",
		Skip:          queryInt(c, "skip", 0),
		Limit:         queryInt(c, "limit", 100),
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}

// GetPost busca um post por ID
// @Summary      Buscar post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do post"
// @Success      200  {object}  dto.PostResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	post, err := h.postService.GetPost(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// CreatePost cria um post
// @Summary      Criar post
// @Description  Cria um rascunho; as tags são a união das informadas com as extraídas do texto
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreatePostRequest  true  "Dados do post"
// @Success      201      {object}  dto.PostResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	post, err := h.postService.CreatePost(c.Request.Context(), actor, services.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		TagNames:   req.TagNames,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// UpdatePost atualiza um post
// @Summary      Atualizar post
// @Description  Atualização parcial; tag_ids/tag_names presentes substituem o conjunto de tags
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "ID do post"
// @Param        request  body      dto.UpdatePostRequest  true  "Campos a alterar"
// @Success      200      {object}  dto.PostResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	post, err := h.postService.UpdatePost(c.Request.Context(), actor, c.Param("id"), services.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		TagNames:   req.TagNames,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// DeletePost remove um post
// @Summary      Deletar post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do post"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.postService.DeletePost(c.Request.Context(), actor, c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TogglePublish alterna a publicação de um post
// @Summary      Publicar/despublicar post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do post"
// @Success      200  {object}  dto.PostResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/toggle-publish [patch]
func (h *PostHandler) TogglePublish(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	post, err := h.postService.TogglePublish(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}
