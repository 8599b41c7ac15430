package services

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
)

func TestAuthService_Signup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("cadastro cria conta comum ativa", func(t *testing.T) {
		user, err := env.auth.Signup(ctx, SignupInput{
			Email:    "new@example.com",
			FullName: "New User",
			Password: "password123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsAdmin)
		assert.False(t, user.IsEditor)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	t.Run("email duplicado é conflito", func(t *testing.T) {
		_, err := env.auth.Signup(ctx, SignupInput{
			Email:    "new@example.com",
			FullName: "Other",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})

	t.Run("email inválido é rejeitado", func(t *testing.T) {
		_, err := env.auth.Signup(ctx, SignupInput{
			Email:    "not-an-email",
			FullName: "X",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "login@example.com", false, false)

	t.Run("credenciais corretas emitem token", func(t *testing.T) {
		token, twoFactorRequired, err := env.auth.Login(ctx, "login@example.com", "password123")
		require.NoError(t, err)
		assert.False(t, twoFactorRequired)

		claims, err := env.tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", claims.Subject)
		assert.False(t, claims.PendingTwoFactor())
	})

	t.Run("senha errada é rejeitada", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "login@example.com", "wrong")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("email desconhecido é rejeitado com o mesmo erro", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("conta desativada não loga", func(t *testing.T) {
		user.IsActive = false
		require.NoError(t, env.userRepo.Update(ctx, user))

		_, _, err := env.auth.Login(ctx, "login@example.com", "password123")
		assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)

		user.IsActive = true
		require.NoError(t, env.userRepo.Update(ctx, user))
	})
}

func TestAuthService_TwoFactorFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "2fa@example.com", false, false)

	t.Run("verificar sem habilitar falha", func(t *testing.T) {
		_, err := env.auth.VerifyTwoFactor(ctx, user, "123456")
		assert.ErrorIs(t, err, domainerrors.ErrTwoFactorNotEnabled)
	})

	t.Run("habilitar sem preparar falha", func(t *testing.T) {
		err := env.auth.EnableTwoFactor(ctx, user, "123456")
		assert.ErrorIs(t, err, domainerrors.ErrTwoFactorNotConfigured)
	})

	var secret string

	t.Run("setup gera segredo e QR", func(t *testing.T) {
		setup, err := env.auth.SetupTwoFactor(ctx, user)
		require.NoError(t, err)

		assert.NotEmpty(t, setup.Secret)
		assert.Contains(t, setup.QRCode, "data:image/png;base64,")
		secret = setup.Secret

		// Persistido, mas ainda não habilitado
		stored, err := env.userRepo.FindByEmail(ctx, "2fa@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored.TwoFactorSecret)
		assert.False(t, stored.TwoFactorEnabled)
	})

	t.Run("código errado não habilita", func(t *testing.T) {
		err := env.auth.EnableTwoFactor(ctx, user, "000000")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTwoFactorCode)
	})

	t.Run("código válido habilita", func(t *testing.T) {
		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)

		require.NoError(t, env.auth.EnableTwoFactor(ctx, user, code))
		assert.True(t, user.TwoFactorEnabled)
	})

	t.Run("setup após habilitado é rejeitado", func(t *testing.T) {
		_, err := env.auth.SetupTwoFactor(ctx, user)
		assert.ErrorIs(t, err, domainerrors.ErrTwoFactorAlreadyEnabled)
	})

	t.Run("login passa a exigir o segundo fator", func(t *testing.T) {
		token, twoFactorRequired, err := env.auth.Login(ctx, "2fa@example.com", "password123")
		require.NoError(t, err)
		assert.True(t, twoFactorRequired)

		claims, err := env.tokens.Parse(token)
		require.NoError(t, err)
		assert.True(t, claims.PendingTwoFactor())
	})

	t.Run("verificação troca por token completo", func(t *testing.T) {
		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)

		token, err := env.auth.VerifyTwoFactor(ctx, user, code)
		require.NoError(t, err)

		claims, err := env.tokens.Parse(token)
		require.NoError(t, err)
		assert.False(t, claims.PendingTwoFactor())
	})

	t.Run("código inválido na verificação é rejeitado", func(t *testing.T) {
		_, err := env.auth.VerifyTwoFactor(ctx, user, "000000")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTwoFactorCode)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "reset@example.com", false, false)

	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	env.auth.now = func() time.Time { return base }

	t.Run("email desconhecido não revela nada", func(t *testing.T) {
		assert.NoError(t, env.auth.RequestPasswordReset(ctx, "ghost@example.com"))
	})

	t.Run("fluxo completo troca a senha e limpa o token", func(t *testing.T) {
		require.NoError(t, env.auth.RequestPasswordReset(ctx, "reset@example.com"))

		stored, err := env.userRepo.FindByEmail(ctx, "reset@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored.ResetToken)

		require.NoError(t, env.auth.ResetPassword(ctx, *stored.ResetToken, "newpassword1"))

		_, _, err = env.auth.Login(ctx, "reset@example.com", "newpassword1")
		assert.NoError(t, err)

		// Token não pode ser reutilizado
		err = env.auth.ResetPassword(ctx, *stored.ResetToken, "again12345")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		require.NoError(t, env.auth.RequestPasswordReset(ctx, "reset@example.com"))

		stored, err := env.userRepo.FindByEmail(ctx, "reset@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored.ResetToken)

		// Avança o relógio além da validade de 1 hora
		env.auth.now = func() time.Time { return base.Add(2 * time.Hour) }

		err = env.auth.ResetPassword(ctx, *stored.ResetToken, "newpassword2")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("token desconhecido é rejeitado", func(t *testing.T) {
		err := env.auth.ResetPassword(ctx, "does-not-exist", "newpassword3")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})
}
