package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

func TestUserService_Authorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	editor := env.createUser(t, "editor@example.com", false, true)
	regular := env.createUser(t, "user@example.com", false, false)

	t.Run("não-admin não lista usuários", func(t *testing.T) {
		_, err := env.users.ListUsers(ctx, editor, repositories.UserFilters{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = env.users.ListUsers(ctx, regular, repositories.UserFilters{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("não-admin não cria usuários", func(t *testing.T) {
		_, err := env.users.CreateUser(ctx, editor, CreateUserInput{
			Email:    "x@example.com",
			FullName: "X",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)

	t.Run("conta criada por admin nasce verificada", func(t *testing.T) {
		user, err := env.users.CreateUser(ctx, admin, CreateUserInput{
			Email:    "created@example.com",
			FullName: "Created User",
			Password: "password123",
			IsEditor: true,
		})
		require.NoError(t, err)

		assert.True(t, user.IsVerified)
		assert.True(t, user.IsActive)
		assert.True(t, user.IsEditor)
		assert.False(t, user.IsAdmin)
	})

	t.Run("senha vazia é rejeitada", func(t *testing.T) {
		_, err := env.users.CreateUser(ctx, admin, CreateUserInput{
			Email:    "nopass@example.com",
			FullName: "No Pass",
		})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordRequired)
	})

	t.Run("email duplicado é conflito", func(t *testing.T) {
		_, err := env.users.CreateUser(ctx, admin, CreateUserInput{
			Email:    "created@example.com",
			FullName: "Dup",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	env.createUser(t, "alpha@example.com", false, false)
	env.createUser(t, "beta@example.com", false, false)

	t.Run("lista todos", func(t *testing.T) {
		users, err := env.users.ListUsers(ctx, admin, repositories.UserFilters{})
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("busca por email", func(t *testing.T) {
		users, err := env.users.ListUsers(ctx, admin, repositories.UserFilters{Search: "alpha"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alpha@example.com", users[0].Email.String())
	})

	t.Run("paginação", func(t *testing.T) {
		users, err := env.users.ListUsers(ctx, admin, repositories.UserFilters{Skip: 1, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserService_SelfProtection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	target := env.createUser(t, "target@example.com", false, false)

	t.Run("admin não alterna o próprio flag ativo", func(t *testing.T) {
		_, err := env.users.ToggleActive(ctx, admin, admin.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfAction)
	})

	t.Run("admin não alterna o próprio flag admin", func(t *testing.T) {
		_, err := env.users.ToggleAdmin(ctx, admin, admin.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfAction)
	})

	t.Run("admin não deleta a si mesmo", func(t *testing.T) {
		err := env.users.DeleteUser(ctx, admin, admin.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfAction)
	})

	t.Run("update ignora flags próprios de admin/ativo", func(t *testing.T) {
		falseValue := false
		updated, err := env.users.UpdateUser(ctx, admin, admin.ID, UpdateUserInput{
			IsAdmin:  &falseValue,
			IsActive: &falseValue,
		})
		require.NoError(t, err)

		assert.True(t, updated.IsAdmin)
		assert.True(t, updated.IsActive)
	})

	t.Run("flags de outros usuários mudam normalmente", func(t *testing.T) {
		toggled, err := env.users.ToggleAdmin(ctx, admin, target.ID)
		require.NoError(t, err)
		assert.True(t, toggled.IsAdmin)

		toggled, err = env.users.ToggleActive(ctx, admin, target.ID)
		require.NoError(t, err)
		assert.False(t, toggled.IsActive)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	target := env.createUser(t, "target@example.com", false, false)
	env.createUser(t, "taken@example.com", false, false)

	t.Run("atualização parcial não toca os demais campos", func(t *testing.T) {
		name := "Renamed User"
		updated, err := env.users.UpdateUser(ctx, admin, target.ID, UpdateUserInput{FullName: &name})
		require.NoError(t, err)

		assert.Equal(t, "Renamed User", updated.FullName)
		assert.Equal(t, "target@example.com", updated.Email.String())
	})

	t.Run("email em uso por outro usuário é conflito", func(t *testing.T) {
		email := "taken@example.com"
		_, err := env.users.UpdateUser(ctx, admin, target.ID, UpdateUserInput{Email: &email})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})

	t.Run("troca de senha permite novo login", func(t *testing.T) {
		password := "changed12345"
		_, err := env.users.UpdateUser(ctx, admin, target.ID, UpdateUserInput{Password: &password})
		require.NoError(t, err)

		_, _, err = env.auth.Login(ctx, "target@example.com", "changed12345")
		assert.NoError(t, err)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		name := "X"
		_, err := env.users.UpdateUser(ctx, admin, "33333333-3333-3333-3333-333333333333", UpdateUserInput{FullName: &name})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	target := env.createUser(t, "target@example.com", false, false)

	require.NoError(t, env.users.DeleteUser(ctx, admin, target.ID))

	_, err := env.users.GetUser(ctx, admin, target.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
