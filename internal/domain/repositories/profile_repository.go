package repositories

import (
	"context"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
)

// ProfileRepository define a interface para persistência de perfis
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
}
