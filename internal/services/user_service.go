package services

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/policy"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
)

// UserService contém a lógica administrativa de usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   *security.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher *security.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListUsers lista usuários com busca e paginação (somente admin)
func (s *UserService) ListUsers(ctx context.Context, actor *entities.User, filters repositories.UserFilters) ([]*entities.User, error) {
	if !policy.CanAdministerUsers(actor) {
		return nil, errors.ErrForbidden
	}
	return s.userRepo.List(ctx, filters)
}

// GetUser busca um usuário por ID (somente admin)
func (s *UserService) GetUser(ctx context.Context, actor *entities.User, id string) (*entities.User, error) {
	if !policy.CanAdministerUsers(actor) {
		return nil, errors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// CreateUserInput representa os dados para criação administrativa de usuário
type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	IsAdmin  bool
	IsEditor bool
	IsActive *bool
}

// CreateUser cria um usuário via painel administrativo. Contas criadas por
// admin nascem verificadas.
func (s *UserService) CreateUser(ctx context.Context, actor *entities.User, input CreateUserInput) (*entities.User, error) {
	if !policy.CanAdministerUsers(actor) {
		return nil, errors.ErrForbidden
	}

	if input.Password == "" {
		return nil, errors.ErrPasswordRequired
	}

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

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &entities.User{
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hash,
		IsActive:     isActive,
		IsVerified:   true,
		IsAdmin:      input.IsAdmin,
		IsEditor:     input.IsEditor,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created by admin", "user_id", user.ID, "created_by", actor.ID)
	return user, nil
}

// UpdateUserInput representa os dados para atualização parcial de usuário
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	IsAdmin  *bool
	IsEditor *bool
	IsActive *bool
}

// UpdateUser atualiza um usuário (somente admin). Campos omitidos não mudam.
// Um admin não pode alterar os próprios flags de admin/ativo.
func (s *UserService) UpdateUser(ctx context.Context, actor *entities.User, id string, input UpdateUserInput) (*entities.User, error) {
	if !policy.CanAdministerUsers(actor) {
		return nil, errors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != user.Email.String() {
		email, err := valueobjects.NewEmail(*input.Email)
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
		user.Email = email
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	// Flags próprios não podem ser alterados pelo próprio admin
	if input.IsAdmin != nil && user.ID != actor.ID {
		user.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil && user.ID != actor.ID {
		user.IsActive = *input.IsActive
	}
	if input.IsEditor != nil {
		user.IsEditor = *input.IsEditor
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated by admin", "user_id", user.ID, "updated_by", actor.ID)
	return user, nil
}

// ToggleActive alterna o flag ativo do usuário alvo; auto-alvo é rejeitado
func (s *UserService) ToggleActive(ctx context.Context, actor *entities.User, id string) (*entities.User, error) {
	user, err := s.findTarget(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user active toggled", "user_id", user.ID, "is_active", user.IsActive)
	return user, nil
}

// ToggleAdmin alterna o flag admin do usuário alvo; auto-alvo é rejeitado
func (s *UserService) ToggleAdmin(ctx context.Context, actor *entities.User, id string) (*entities.User, error) {
	user, err := s.findTarget(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user admin toggled", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// DeleteUser remove o usuário alvo; auto-deleção é rejeitada
func (s *UserService) DeleteUser(ctx context.Context, actor *entities.User, id string) error {
	user, err := s.findTarget(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", user.ID, "deleted_by", actor.ID)
	return nil
}

// findTarget resolve o alvo de operações administrativas destrutivas,
// bloqueando o próprio ator
func (s *UserService) findTarget(ctx context.Context, actor *entities.User, id string) (*entities.User, error) {
	if !policy.CanAdministerUsers(actor) {
		return nil, errors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if user.ID == actor.ID {
		return nil, errors.ErrSelfAction
	}
	return user, nil
}
