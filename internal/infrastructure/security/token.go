package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/rafabene/dashboard-backend/internal/domain/errors"
)

// Claims são as claims do bearer token.
// Subject carrega o email do usuário; os flags de dois fatores indicam se o
// token ainda aguarda o segundo fator.
type Claims struct {
	TwoFactorRequired bool `json:"two_factor_required,omitempty"`
	TwoFactorVerified bool `json:"two_factor_verified,omitempty"`
	jwt.RegisteredClaims
}

// PendingTwoFactor indica que o token foi emitido no login mas o segundo
// fator ainda não foi apresentado
func (c *Claims) PendingTwoFactor() bool {
	return c.TwoFactorRequired && !c.TwoFactorVerified
}

// TokenManager emite e valida bearer tokens assinados (HS256)
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager cria um novo TokenManager
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	if expiry <= 0 {
		expiry = 30 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

// Generate emite um token para o email informado
func (m *TokenManager) Generate(email string, twoFactorRequired, twoFactorVerified bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		TwoFactorRequired: twoFactorRequired,
		TwoFactorVerified: twoFactorVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida assinatura e expiração e retorna as claims
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrUnauthorized
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}
	return claims, nil
}
