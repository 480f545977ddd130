package stemmer

import "strings"

// Slovak is a light rule based stemmer for Slovak nouns and adjectives,
// after the stemmer-sk rule set. Verbs are not handled.
type Slovak struct{}

// Stem implements Stemmer.
func (Slovak) Stem(word string) string { return Stem(word) }

// Stem reduces a lower-cased Slovak word to its stem. The result is never
// longer than word. Applying Stem twice may strip more than once.
func Stem(word string) string {
	if word == "" {
		return word
	}

	s := []rune(word)
	s, n := removePrefix(s, len(s))
	n = removeCase(s, n)
	n = removePossessives(s, n)
	if n > 0 {
		s, n = normalize(s, n)
	}
	if n > 0 {
		s, n = normalizeTail(s, n)
	}
	return string(s[:n])
}

func removePrefix(s []rune, n int) ([]rune, int) {
	if n > 6 && HasPrefix(s, n, superlativePrefix) {
		return DeleteN(s, 0, n, len(superlativePrefix))
	}
	return s, n
}

func removeCase(s []rune, n int) int {
	for _, g := range caseSuffixes {
		if n <= g.minLen() {
			continue
		}
		for _, suffix := range g.suffixes {
			if HasSuffix(s, n, suffix) {
				return n - g.remove
			}
		}
	}
	if n > 3 && strings.ContainsRune(caseVowels, s[n-1]) {
		return n - 1
	}
	return n
}

func removePossessives(s []rune, n int) int {
	if n <= 5 {
		return n
	}
	for _, suffix := range possessiveSuffixes {
		if HasSuffix(s, n, suffix) {
			return n - 2
		}
	}
	return n
}

// normalize hardens a soft final consonant, or folds i+vowel+consonant
// into vowel+consonant.
func normalize(s []rune, n int) ([]rune, int) {
	if hard, ok := softFinals[s[n-1]]; ok {
		return ReplaceAt(s, n-1, hard), n
	}
	if n > 3 && s[n-3] == 'i' && strings.ContainsRune("eau", s[n-2]) {
		s = ReplaceAt(s, n-3, s[n-2])
		s = ReplaceAt(s, n-2, s[n-1])
		return s, n - 1
	}
	return s, n
}

// normalizeTail drops the vowel in a trailing e*, ok or ol.
func normalizeTail(s []rune, n int) ([]rune, int) {
	if n <= 3 {
		return s, n
	}
	if s[n-2] == 'e' || (s[n-2] == 'o' && (s[n-1] == 'k' || s[n-1] == 'l')) {
		return ReplaceAt(s, n-2, s[n-1]), n - 1
	}
	return s, n
}
