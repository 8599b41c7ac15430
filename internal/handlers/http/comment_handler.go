package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dashboard-backend/internal/handlers/dto"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// CommentHandler lida com requisições HTTP de comentários
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler cria um novo CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments lista os comentários de um post
// @Summary      Listar comentários de um post
// @Description  Comentários do post, mais antigos primeiro
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do post"
// @Success      200  {array}   dto.CommentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	comments, err := h.commentService.ListComments(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// ListAllComments lista todos os comentários (moderação)
// @Summary      Listar todos os comentários
// @Description  Todos os comentários do sistema, mais recentes primeiro
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CommentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/posts/comments/all [get]
func (h *CommentHandler) ListAllComments(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	comments, err := h.commentService.ListAllComments(c.Request.Context(), actor)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// CreateComment cria um comentário em um post
// @Summary      Comentar em um post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true  "ID do post"
// @Param        request  body      dto.CommentRequest  true  "Conteúdo"
// @Success      201      {object}  dto.CommentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	comment, err := h.commentService.CreateComment(c.Request.Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// UpdateComment edita um comentário
// @Summary      Editar comentário
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true  "ID do comentário"
// @Param        request  body      dto.CommentRequest  true  "Conteúdo"
// @Success      200      {object}  dto.CommentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/posts/comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondValidationError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	comment, err := h.commentService.UpdateComment(c.Request.Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteComment remove um comentário
// @Summary      Deletar comentário
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do comentário"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.commentService.DeleteComment(c.Request.Context(), actor, c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
