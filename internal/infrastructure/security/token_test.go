package security

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	t.Run("token emitido é válido e carrega o subject", func(t *testing.T) {
		token, err := manager.Generate("user@example.com", false, false)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		claims, err := manager.Parse(token)
		if err != nil {
			t.Fatalf("falha ao validar token: %v", err)
		}

		if claims.Subject != "user@example.com" {
			t.Errorf("esperava subject 'user@example.com', obteve '%s'", claims.Subject)
		}
		if claims.PendingTwoFactor() {
			t.Error("token sem dois fatores não deveria estar pendente")
		}
	})

	t.Run("token de login com dois fatores fica pendente", func(t *testing.T) {
		token, err := manager.Generate("user@example.com", true, false)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		claims, err := manager.Parse(token)
		if err != nil {
			t.Fatalf("falha ao validar token: %v", err)
		}

		if !claims.PendingTwoFactor() {
			t.Error("esperava token pendente do segundo fator")
		}
	})

	t.Run("token verificado não fica pendente", func(t *testing.T) {
		token, err := manager.Generate("user@example.com", true, true)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		claims, err := manager.Parse(token)
		if err != nil {
			t.Fatalf("falha ao validar token: %v", err)
		}

		if claims.PendingTwoFactor() {
			t.Error("token verificado não deveria estar pendente")
		}
	})

	t.Run("token adulterado é rejeitado", func(t *testing.T) {
		token, err := manager.Generate("user@example.com", false, false)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		if _, err := manager.Parse(token + "x"); err == nil {
			t.Error("esperava erro para token adulterado")
		}
	})

	t.Run("token de outro segredo é rejeitado", func(t *testing.T) {
		other := NewTokenManager("other-secret", 30*time.Minute)
		token, err := other.Generate("user@example.com", false, false)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		if _, err := manager.Parse(token); err == nil {
			t.Error("esperava erro para assinatura inválida")
		}
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		shortLived := NewTokenManager("test-secret", time.Nanosecond)
		token, err := shortLived.Generate("user@example.com", false, false)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		if _, err := shortLived.Parse(token); err == nil {
			t.Error("esperava erro para token expirado")
		}
	})
}

func TestNewTokenManager_ExpiracaoPadrao(t *testing.T) {
	manager := NewTokenManager("test-secret", 0)
	if manager.expiry != 30*time.Minute {
		t.Errorf("esperava expiração padrão de 30m, obteve %v", manager.expiry)
	}
}
