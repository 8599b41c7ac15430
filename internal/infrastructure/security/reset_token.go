package security

import (
	"crypto/rand"
	"encoding/base64"
)

const resetTokenBytes = 32

// NewResetToken gera um token aleatório URL-safe de alta entropia para
// reset de senha
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
