package dto

import (
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// CommentRequest representa a criação/edição de um comentário
type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse representa um comentário com o autor hidratado
type CommentResponse struct {
	ID        string       `json:"id"`
	PostID    string       `json:"post_id"`
	UserID    string       `json:"user_id"`
	User      *UserSummary `json:"user,omitempty"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ToCommentResponse converte uma entidade Comment para CommentResponse
func ToCommentResponse(comment *entities.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		User:      ToUserSummary(comment.User),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToCommentResponses converte uma lista de comentários para CommentResponse
func ToCommentResponses(comments []*entities.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}
