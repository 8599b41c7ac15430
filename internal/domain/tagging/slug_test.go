package tagging

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"texto simples", "Hello World", "hello-world"},
		{"maiúsculas viram minúsculas", "GoLang Tips", "golang-tips"},
		{"pontuação removida", "Hello, World!", "hello-world"},
		{"espaços múltiplos colapsam", "a   b    c", "a-b-c"},
		{"hífens múltiplos colapsam", "a---b", "a-b"},
		{"mistura de espaços e hífens", "a - b -- c", "a-b-c"},
		{"hífens nas bordas removidos", "-hello-", "hello"},
		{"underscore preservado", "snake_case_title", "snake_case_title"},
		{"dígitos preservados", "Top 10 Posts", "top-10-posts"},
		{"letras acentuadas preservadas", "Ação e Reação", "ação-e-reação"},
		{"coreano preservado", "안녕하세요 세계", "안녕하세요-세계"},
		{"string vazia", "", ""},
		{"somente pontuação", "!!!???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, esperava %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugify_Idempotente(t *testing.T) {
	inputs := []string{"Hello, World!", "Ação e Reação", "a - b -- c", "Top 10"}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify não é idempotente para %q: %q != %q", input, once, twice)
		}
	}
}
