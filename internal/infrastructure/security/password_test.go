package security

import "testing"

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	t.Run("hash e verificação com senha correta", func(t *testing.T) {
		hash, err := hasher.Hash("s3nha-segura")
		if err != nil {
			t.Fatalf("falha ao gerar hash: %v", err)
		}

		if hash == "s3nha-segura" {
			t.Error("hash não deveria ser a senha em texto")
		}
		if !hasher.Verify(hash, "s3nha-segura") {
			t.Error("esperava verificação com sucesso")
		}
	})

	t.Run("senha errada não verifica", func(t *testing.T) {
		hash, err := hasher.Hash("s3nha-segura")
		if err != nil {
			t.Fatalf("falha ao gerar hash: %v", err)
		}

		if hasher.Verify(hash, "outra-senha") {
			t.Error("não esperava verificação com senha errada")
		}
	})

	t.Run("hashes da mesma senha são diferentes", func(t *testing.T) {
		first, err := hasher.Hash("s3nha-segura")
		if err != nil {
			t.Fatalf("falha ao gerar hash: %v", err)
		}
		second, err := hasher.Hash("s3nha-segura")
		if err != nil {
			t.Fatalf("falha ao gerar hash: %v", err)
		}

		if first == second {
			t.Error("esperava salts diferentes para cada hash")
		}
	})
}

func TestNewResetToken(t *testing.T) {
	first, err := NewResetToken()
	if err != nil {
		t.Fatalf("falha ao gerar token: %v", err)
	}
	second, err := NewResetToken()
	if err != nil {
		t.Fatalf("falha ao gerar token: %v", err)
	}

	if first == "" || second == "" {
		t.Fatal("token não deveria ser vazio")
	}
	if first == second {
		t.Error("tokens consecutivos não deveriam se repetir")
	}
}
