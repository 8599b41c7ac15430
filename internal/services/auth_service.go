package services

import (
	"context"
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
)

const resetTokenTTL = time.Hour

// AuthService contém a lógica de autenticação: cadastro, login,
// dois fatores e reset de senha
type AuthService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   *security.PasswordHasher
	tokens   *security.TokenManager
	totp     *security.TOTPManager
	logger   ports.Logger
	now      func() time.Time
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
	totp *security.TOTPManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		tokens:   tokens,
		totp:     totp,
		logger:   logger,
		now:      time.Now,
	}
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// Signup registra uma nova conta. Contas novas não são admin nem editor.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID, "email", email.String())
	return user, nil
}

// Login verifica as credenciais e emite um bearer token. Se a conta tem
// dois fatores habilitado, o token emitido ainda aguarda o segundo passo
// e o retorno sinaliza isso.
func (s *AuthService) Login(ctx context.Context, email, password string) (token string, twoFactorRequired bool, err error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, password) {
		return "", false, errors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", false, errors.ErrAccountDisabled
	}

	token, err = s.tokens.Generate(user.Email.String(), user.TwoFactorEnabled, false)
	if err != nil {
		return "", false, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "two_factor_required", user.TwoFactorEnabled)
	return token, user.TwoFactorEnabled, nil
}

// VerifyTwoFactor valida o código TOTP pós-login e emite um token
// totalmente verificado
func (s *AuthService) VerifyTwoFactor(ctx context.Context, user *entities.User, code string) (string, error) {
	if !user.TwoFactorEnabled || user.TwoFactorSecret == nil {
		return "", errors.ErrTwoFactorNotEnabled
	}

	if !s.totp.Verify(*user.TwoFactorSecret, code) {
		return "", errors.ErrInvalidTwoFactorCode
	}

	token, err := s.tokens.Generate(user.Email.String(), true, true)
	if err != nil {
		return "", err
	}

	s.logger.Info("two-factor verified", "user_id", user.ID)
	return token, nil
}

// TwoFactorSetup é o resultado da preparação do segundo fator
type TwoFactorSetup struct {
	Secret string
	QRCode string // PNG em data URI para escanear no autenticador
}

// SetupTwoFactor gera e persiste um novo segredo (ainda não habilitado) e
// retorna o QR de provisionamento. Um segredo anterior não habilitado é
// substituído.
func (s *AuthService) SetupTwoFactor(ctx context.Context, user *entities.User) (*TwoFactorSetup, error) {
	if user.TwoFactorEnabled {
		return nil, errors.ErrTwoFactorAlreadyEnabled
	}

	secret, provisioningURL, err := s.totp.GenerateSecret(user.Email.String())
	if err != nil {
		return nil, err
	}

	user.TwoFactorSecret = &secret
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	qrCode, err := s.totp.QRCodeDataURI(provisioningURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("two-factor setup started", "user_id", user.ID)
	return &TwoFactorSetup{Secret: secret, QRCode: qrCode}, nil
}

// EnableTwoFactor habilita o segundo fator após a verificação de um
// código válido contra o segredo preparado no setup
func (s *AuthService) EnableTwoFactor(ctx context.Context, user *entities.User, code string) error {
	if user.TwoFactorEnabled {
		return errors.ErrTwoFactorAlreadyEnabled
	}
	if user.TwoFactorSecret == nil {
		return errors.ErrTwoFactorNotConfigured
	}

	if !s.totp.Verify(*user.TwoFactorSecret, code) {
		return errors.ErrInvalidTwoFactorCode
	}

	user.TwoFactorEnabled = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("two-factor enabled", "user_id", user.ID)
	return nil
}

// RequestPasswordReset gera um token de reset com validade de 1 hora.
// Não revela se o email existe.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Resposta idêntica para email inexistente
		return nil
	}

	token, err := security.NewResetToken()
	if err != nil {
		return err
	}

	expires := s.now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword conclui o reset: exige token não expirado, troca a senha e
// limpa o token
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || !user.HasValidReset(s.now()) {
		return errors.ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ClearReset()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password reset completed", "user_id", user.ID)
	return nil
}
