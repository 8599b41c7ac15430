package entities

import (
	"testing"
	"time"
)

func TestUser_SplitName(t *testing.T) {
	tests := []struct {
		name          string
		fullName      string
		expectedFirst string
		expectedLast  string
	}{
		{"nome e sobrenome", "Maria Silva", "Maria", "Silva"},
		{"sobrenome composto", "Maria da Silva Santos", "Maria", "da Silva Santos"},
		{"somente primeiro nome", "Maria", "Maria", ""},
		{"espaços extras", "  Maria   Silva  ", "Maria", "Silva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{FullName: tt.fullName}
			first, last := user.SplitName()

			if first == nil || *first != tt.expectedFirst {
				t.Errorf("esperava primeiro nome %q, obteve %v", tt.expectedFirst, first)
			}
			if tt.expectedLast == "" {
				if last != nil {
					t.Errorf("esperava sobrenome nulo, obteve %q", *last)
				}
			} else if last == nil || *last != tt.expectedLast {
				t.Errorf("esperava sobrenome %q, obteve %v", tt.expectedLast, last)
			}
		})
	}

	t.Run("nome vazio", func(t *testing.T) {
		user := &User{FullName: ""}
		first, last := user.SplitName()
		if first != nil || last != nil {
			t.Error("esperava nil para nome vazio")
		}
	})
}

func TestUser_HasValidReset(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	token := "reset-token"

	t.Run("reset dentro da validade", func(t *testing.T) {
		expires := now.Add(time.Hour)
		user := &User{ResetToken: &token, ResetTokenExpires: &expires}
		if !user.HasValidReset(now) {
			t.Error("esperava reset válido")
		}
	})

	t.Run("reset expirado", func(t *testing.T) {
		expires := now.Add(-time.Minute)
		user := &User{ResetToken: &token, ResetTokenExpires: &expires}
		if user.HasValidReset(now) {
			t.Error("não esperava reset expirado válido")
		}
	})

	t.Run("sem reset em andamento", func(t *testing.T) {
		user := &User{}
		if user.HasValidReset(now) {
			t.Error("não esperava reset válido sem token")
		}
	})
}

func TestUser_ClearReset(t *testing.T) {
	token := "reset-token"
	expires := time.Now().Add(time.Hour)
	user := &User{ResetToken: &token, ResetTokenExpires: &expires}

	user.ClearReset()

	if user.ResetToken != nil || user.ResetTokenExpires != nil {
		t.Error("esperava token e expiração limpos")
	}
}
