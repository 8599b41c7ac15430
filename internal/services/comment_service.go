package services

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/policy"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// CommentService contém a lógica de comentários em posts
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	logger      ports.Logger
}

// NewCommentService cria um novo CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	logger ports.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// ListComments lista os comentários de um post, mais antigos primeiro.
// O post precisa estar visível para o ator.
func (s *CommentService) ListComments(ctx context.Context, actor *entities.User, postID string) ([]*entities.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if !policy.CanViewPost(actor, post) {
		return nil, errors.ErrPostNotPublished
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// ListAllComments lista todos os comentários do sistema, mais recentes
// primeiro (visão de moderação)
func (s *CommentService) ListAllComments(ctx context.Context, actor *entities.User) ([]*entities.Comment, error) {
	if !policy.CanManageContent(actor) {
		return nil, errors.ErrForbidden
	}
	return s.commentRepo.ListAll(ctx)
}

// CreateComment cria um comentário em um post publicado. Quem gerencia
// conteúdo pode comentar em rascunhos.
func (s *CommentService) CreateComment(ctx context.Context, actor *entities.User, postID, content string) (*entities.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	if !policy.CanComment(actor, post) {
		return nil, errors.ErrPostNotPublished
	}

	comment := &entities.Comment{
		PostID:  postID,
		UserID:  actor.ID,
		Content: content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "comment_id", comment.ID, "post_id", postID, "user_id", actor.ID)
	return s.commentRepo.FindByID(ctx, comment.ID)
}

// UpdateComment edita o conteúdo de um comentário. Somente o autor do
// comentário ou um admin.
func (s *CommentService) UpdateComment(ctx context.Context, actor *entities.User, id, content string) (*entities.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.ErrCommentNotFound
	}

	if !policy.CanEditComment(actor, comment) {
		return nil, errors.ErrForbidden
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "comment_id", id, "updated_by", actor.ID)
	return s.commentRepo.FindByID(ctx, id)
}

// DeleteComment remove um comentário. Somente o autor do comentário ou
// um admin.
func (s *CommentService) DeleteComment(ctx context.Context, actor *entities.User, id string) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.ErrCommentNotFound
	}

	if !policy.CanEditComment(actor, comment) {
		return errors.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "comment_id", id, "deleted_by", actor.ID)
	return nil
}
