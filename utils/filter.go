package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	stopwords = initStopwords()
)

func initStopwords() map[string]map[string]struct{} {
	return map[string]map[string]struct{}{
		"slovak": set(
			"a", "aj", "ako", "ale", "alebo", "by", "do", "i", "je", "k",
			"na", "nie", "o", "od", "po", "pre", "pri", "s", "sa", "si",
			"so", "sú", "to", "u", "v", "vo", "z", "za", "že",
		),
		"english": set(
			"a", "and", "be", "have", "i", "in", "of", "that", "the", "to",
		),
	}
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Memory-efficient stopword filter
func stopwordFilter(lang string, tokens []string) []string {
	words := stopwords[lang]
	n := 0
	for _, token := range tokens {
		if _, ok := words[token]; !ok {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

// In-place lowercase transformation
func (a *Analyzer) lowercaseFilter(tokens []string) []string {
	for i := range tokens {
		tokens[i] = a.Lower(tokens[i])
	}
	return tokens
}

// NormalizeTerm lower-cases a card term, trims it and collapses inner
// whitespace to single spaces.
func (a *Analyzer) NormalizeTerm(term string) string {
	return strings.Join(strings.Fields(a.Lower(term)), " ")
}

// IsIgnoredTerm reports whether an imported word is too short to become a
// card or starts with a digit.
func IsIgnoredTerm(term string) bool {
	if utf8.RuneCountInString(term) < 3 {
		return true
	}
	r, _ := utf8.DecodeRuneInString(term)
	return unicode.IsDigit(r)
}
