package services

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/policy"
	"github.com/rafabene/dashboard-backend/internal/domain/ports"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
)

// ProfileService contém a lógica de perfis de usuário
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewProfileService cria um novo ProfileService
func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		uow:         uow,
		logger:      logger,
	}
}

// GetProfile retorna o perfil do usuário alvo, criando um perfil padrão na
// primeira leitura (nome derivado do FullName do usuário). Criação e leitura
// acontecem no mesmo escopo transacional.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*entities.Profile, *entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.ErrUserNotFound
	}

	var profile *entities.Profile
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.profileRepo.FindByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			profile = existing
			return nil
		}

		firstName, lastName := user.SplitName()
		profile = &entities.Profile{
			UserID:    userID,
			FirstName: firstName,
			LastName:  lastName,
		}
		return s.profileRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, nil, err
	}

	return profile, user, nil
}

// UpdateProfileInput representa uma atualização parcial de perfil.
// Campos nil não são alterados.
type UpdateProfileInput struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	Bio             *string
	JobTitle        *string
	Location        *string
	ProfileImageURL *string
	Country         *string
	CityState       *string
	PostalCode      *string
	TaxID           *string
	FacebookURL     *string
	TwitterURL      *string
	LinkedinURL     *string
	InstagramURL    *string
}

// UpdateProfile atualiza o perfil do usuário alvo. Somente o dono ou um
// admin podem editar.
func (s *ProfileService) UpdateProfile(ctx context.Context, actor *entities.User, userID string, input UpdateProfileInput) (*entities.Profile, *entities.User, error) {
	if !policy.CanEditProfile(actor, userID) {
		return nil, nil, errors.ErrForbidden
	}

	profile, user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	applyIfSet(&profile.FirstName, input.FirstName)
	applyIfSet(&profile.LastName, input.LastName)
	applyIfSet(&profile.Phone, input.Phone)
	applyIfSet(&profile.Bio, input.Bio)
	applyIfSet(&profile.JobTitle, input.JobTitle)
	applyIfSet(&profile.Location, input.Location)
	applyIfSet(&profile.ProfileImageURL, input.ProfileImageURL)
	applyIfSet(&profile.Country, input.Country)
	applyIfSet(&profile.CityState, input.CityState)
	applyIfSet(&profile.PostalCode, input.PostalCode)
	applyIfSet(&profile.TaxID, input.TaxID)
	applyIfSet(&profile.FacebookURL, input.FacebookURL)
	applyIfSet(&profile.TwitterURL, input.TwitterURL)
	applyIfSet(&profile.LinkedinURL, input.LinkedinURL)
	applyIfSet(&profile.InstagramURL, input.InstagramURL)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, nil, err
	}

	s.logger.Info("profile updated", "user_id", userID, "updated_by", actor.ID)
	return profile, user, nil
}

func applyIfSet(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
