package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher faz hash e verificação de senhas usando bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher cria um novo PasswordHasher com o custo padrão do bcrypt
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash gera o hash salgado da senha
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara a senha em texto com o hash armazenado
func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
