package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
)

func TestProfileService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "owner@example.com", false, false)
	owner.FullName = "Maria da Silva"
	require.NoError(t, env.userRepo.Update(ctx, owner))

	t.Run("primeira leitura provisiona perfil padrão", func(t *testing.T) {
		profile, user, err := env.profiles.GetProfile(ctx, owner.ID)
		require.NoError(t, err)

		assert.Equal(t, owner.ID, user.ID)
		require.NotNil(t, profile.FirstName)
		assert.Equal(t, "Maria", *profile.FirstName)
		require.NotNil(t, profile.LastName)
		assert.Equal(t, "da Silva", *profile.LastName)
	})

	t.Run("leituras seguintes reutilizam o mesmo perfil", func(t *testing.T) {
		first, _, err := env.profiles.GetProfile(ctx, owner.ID)
		require.NoError(t, err)

		second, _, err := env.profiles.GetProfile(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		_, _, err := env.profiles.GetProfile(ctx, "33333333-3333-3333-3333-333333333333")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "admin@example.com", true, false)
	owner := env.createUser(t, "owner@example.com", false, false)
	other := env.createUser(t, "other@example.com", false, true)

	t.Run("dono atualiza o próprio perfil", func(t *testing.T) {
		bio := "Gosto de Go"
		profile, _, err := env.profiles.UpdateProfile(ctx, owner, owner.ID, UpdateProfileInput{Bio: &bio})
		require.NoError(t, err)

		require.NotNil(t, profile.Bio)
		assert.Equal(t, "Gosto de Go", *profile.Bio)
	})

	t.Run("campos omitidos não são tocados", func(t *testing.T) {
		phone := "+55 11 99999-0000"
		profile, _, err := env.profiles.UpdateProfile(ctx, owner, owner.ID, UpdateProfileInput{Phone: &phone})
		require.NoError(t, err)

		require.NotNil(t, profile.Bio)
		assert.Equal(t, "Gosto de Go", *profile.Bio)
		require.NotNil(t, profile.Phone)
		assert.Equal(t, "+55 11 99999-0000", *profile.Phone)
	})

	t.Run("admin atualiza perfil de terceiro", func(t *testing.T) {
		jobTitle := "Engenheira"
		profile, _, err := env.profiles.UpdateProfile(ctx, admin, owner.ID, UpdateProfileInput{JobTitle: &jobTitle})
		require.NoError(t, err)

		require.NotNil(t, profile.JobTitle)
		assert.Equal(t, "Engenheira", *profile.JobTitle)
	})

	t.Run("editor não atualiza perfil alheio", func(t *testing.T) {
		bio := "invasão"
		_, _, err := env.profiles.UpdateProfile(ctx, other, owner.ID, UpdateProfileInput{Bio: &bio})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("update provisiona perfil inexistente antes de aplicar", func(t *testing.T) {
		location := "São Paulo"
		profile, _, err := env.profiles.UpdateProfile(ctx, other, other.ID, UpdateProfileInput{Location: &location})
		require.NoError(t, err)

		require.NotNil(t, profile.Location)
		assert.Equal(t, "São Paulo", *profile.Location)
	})
}
