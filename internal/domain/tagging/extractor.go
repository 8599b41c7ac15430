package tagging

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxTags            = 10
	maxKeywordsPerKind = 5
)

// stopwords mistura palavras funcionais em coreano e inglês que nunca
// devem virar tag
var stopwords = map[string]struct{}{
	"이": {}, "그": {}, "저": {}, "것": {}, "수": {}, "등": {}, "및": {},
	"또한": {}, "또는": {}, "그리고": {}, "하지만": {}, "그러나": {},
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "may": {}, "might": {},
	"can": {}, "must": {},
}

var (
	hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)
	koreanPattern  = regexp.MustCompile(`[가-힣]{2,}`)
	englishPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// ExtractTags deriva candidatos a tag a partir do título e conteúdo de um
// post. Heurística determinística, sem dicionário externo:
//
//  1. hashtags (#palavra) com 2+ caracteres, na ordem de aparição;
//  2. até 5 sequências de sílabas Hangul (2+ caracteres) por frequência;
//  3. até 5 palavras inglesas (3+ letras, minúsculas) por frequência.
//
// Stopwords nunca entram; o resultado preserva a ordem de descoberta,
// sem duplicatas, com no máximo 10 entradas.
func ExtractTags(title, content string) []string {
	fullText := title + " " + content
	tags := make([]string, 0, maxTags)

	// 1. Hashtags
	for _, match := range hashtagPattern.FindAllStringSubmatch(fullText, -1) {
		hashtag := match[1]
		if utf8.RuneCountInString(hashtag) < 2 {
			continue
		}
		if _, stop := stopwords[strings.ToLower(hashtag)]; stop {
			continue
		}
		tags = append(tags, hashtag)
	}

	// 2. Palavras-chave em coreano, por frequência
	korean := countByFrequency(koreanPattern.FindAllString(fullText, -1), false)
	for i, word := range korean {
		if i >= maxKeywordsPerKind {
			break
		}
		if !contains(tags, word, false) {
			tags = append(tags, word)
		}
	}

	// 3. Palavras-chave em inglês, por frequência (case-insensitive)
	english := countByFrequency(englishPattern.FindAllString(fullText, -1), true)
	for i, word := range english {
		if i >= maxKeywordsPerKind {
			break
		}
		if !contains(tags, word, true) {
			tags = append(tags, word)
		}
	}

	// Remover duplicatas preservando ordem e truncar
	tags = dedup(tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// countByFrequency conta ocorrências (stopwords excluídas) e retorna as
// palavras ordenadas por frequência decrescente. Empates mantêm a ordem
// de primeira aparição.
func countByFrequency(words []string, fold bool) []string {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))

	for _, word := range words {
		if fold {
			word = strings.ToLower(word)
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

func contains(tags []string, word string, fold bool) bool {
	for _, t := range tags {
		if t == word {
			return true
		}
		if fold && strings.EqualFold(t, word) {
			return true
		}
	}
	return false
}

func dedup(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := tags[:0]
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
