package tagging

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugSeparators   = regexp.MustCompile(`[-\s]+`)
)

// Slugify converte texto livre em um slug URL-safe: minúsculas, caracteres
// que não são letra/dígito/underscore/espaço/hífen removidos, sequências de
// espaços e hífens colapsadas em um único hífen, hífens das bordas removidos.
// Idempotente: Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
