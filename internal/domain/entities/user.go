package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rafabene/dashboard-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta do sistema
type User struct {
	ID                string
	Email             valueobjects.Email
	FullName          string
	PasswordHash      string
	IsActive          bool
	IsVerified        bool
	IsAdmin           bool
	IsEditor          bool
	TwoFactorEnabled  bool
	TwoFactorSecret   *string
	ResetToken        *string
	ResetTokenExpires *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SplitName separa FullName em primeiro nome e sobrenome
func (u *User) SplitName() (firstName, lastName *string) {
	parts := strings.Fields(u.FullName)
	if len(parts) == 0 {
		return nil, nil
	}
	firstName = &parts[0]
	if len(parts) > 1 {
		rest := strings.Join(parts[1:], " ")
		lastName = &rest
	}
	return firstName, lastName
}

// HasValidReset verifica se há um reset de senha em andamento ainda válido
func (u *User) HasValidReset(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpires != nil && u.ResetTokenExpires.After(now)
}

// ClearReset limpa o token de reset de senha
func (u *User) ClearReset() {
	u.ResetToken = nil
	u.ResetTokenExpires = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
