package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
)

func (env *testEnv) createPublishedPost(t *testing.T, author *entities.User, title string) *entities.Post {
	t.Helper()

	post := env.createPost(t, author, title, "content")
	published, err := env.posts.TogglePublish(context.Background(), author, post.ID)
	require.NoError(t, err)
	return published
}

func TestCommentService_CreateComment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	editor := env.createUser(t, "editor@example.com", false, true)
	regular := env.createUser(t, "user@example.com", false, false)

	published := env.createPublishedPost(t, editor, "Published Post")
	draft := env.createPost(t, editor, "Draft Post", "content")

	t.Run("qualquer usuário comenta em post publicado", func(t *testing.T) {
		comment, err := env.comments.CreateComment(ctx, regular, published.ID, "Ótimo texto!")
		require.NoError(t, err)

		assert.Equal(t, "Ótimo texto!", comment.Content)
		assert.Equal(t, regular.ID, comment.UserID)
	})

	t.Run("usuário comum não comenta em rascunho", func(t *testing.T) {
		_, err := env.comments.CreateComment(ctx, regular, draft.ID, "espiando")
		assert.ErrorIs(t, err, domainerrors.ErrPostNotPublished)
	})

	t.Run("editor comenta em rascunho", func(t *testing.T) {
		_, err := env.comments.CreateComment(ctx, editor, draft.ID, "nota interna")
		assert.NoError(t, err)
	})

	t.Run("post inexistente", func(t *testing.T) {
		_, err := env.comments.CreateComment(ctx, regular, "33333333-3333-3333-3333-333333333333", "oi")
		assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	editor := env.createUser(t, "editor@example.com", false, true)
	regular := env.createUser(t, "user@example.com", false, false)

	published := env.createPublishedPost(t, editor, "Published Post")
	draft := env.createPost(t, editor, "Draft Post", "content")

	first, err := env.comments.CreateComment(ctx, regular, published.ID, "primeiro")
	require.NoError(t, err)
	second, err := env.comments.CreateComment(ctx, editor, published.ID, "segundo")
	require.NoError(t, err)
	_, err = env.comments.CreateComment(ctx, editor, draft.ID, "no rascunho")
	require.NoError(t, err)

	t.Run("lista do post em ordem cronológica", func(t *testing.T) {
		comments, err := env.comments.ListComments(ctx, regular, published.ID)
		require.NoError(t, err)

		require.Len(t, comments, 2)
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("rascunho fica invisível para usuário comum", func(t *testing.T) {
		_, err := env.comments.ListComments(ctx, regular, draft.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPostNotPublished)
	})

	t.Run("moderação lista tudo, mais recentes primeiro", func(t *testing.T) {
		comments, err := env.comments.ListAllComments(ctx, editor)
		require.NoError(t, err)

		require.Len(t, comments, 3)
		assert.Equal(t, "no rascunho", comments[0].Content)
	})

	t.Run("usuário comum não acessa a visão de moderação", func(t *testing.T) {
		_, err := env.comments.ListAllComments(ctx, regular)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCommentService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	editor := env.createUser(t, "editor@example.com", false, true)
	author := env.createUser(t, "author@example.com", false, false)

	published := env.createPublishedPost(t, editor, "Published Post")
	comment, err := env.comments.CreateComment(ctx, author, published.ID, "original")
	require.NoError(t, err)

	t.Run("autor edita o próprio comentário", func(t *testing.T) {
		updated, err := env.comments.UpdateComment(ctx, author, comment.ID, "editado")
		require.NoError(t, err)
		assert.Equal(t, "editado", updated.Content)
	})

	t.Run("editor não edita comentário alheio", func(t *testing.T) {
		_, err := env.comments.UpdateComment(ctx, editor, comment.ID, "invadido")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("editor não deleta comentário alheio", func(t *testing.T) {
		err := env.comments.DeleteComment(ctx, editor, comment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin modera qualquer comentário", func(t *testing.T) {
		require.NoError(t, env.comments.DeleteComment(ctx, admin, comment.ID))

		_, err := env.comments.UpdateComment(ctx, admin, comment.ID, "x")
		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}
