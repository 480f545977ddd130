package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/viranchils96/slovak-flashcards/stemmer"
)

// Word boundaries. \b-style letter classes split words with diacritics
// too eagerly, so only whitespace and this punctuation separate words.
const separators = `?"„“‚‘(),.;:#+*$/_=-`

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// Tokenize splits text into words.
func Tokenize(text string) []string {
	var tokens []string
	var token []rune

	for _, r := range text {
		if !isSeparator(r) {
			token = append(token, r)
		} else if len(token) > 0 {
			tokens = append(tokens, string(token))
			token = token[:0]
		}
	}

	if len(token) > 0 {
		tokens = append(tokens, string(token))
	}
	return tokens
}

// Analyzer turns text into index terms: lower-cased, stopwords removed and,
// when Stemmer is set, stemmed.
type Analyzer struct {
	Language string
	Stemmer  stemmer.Stemmer
	tag      language.Tag
}

// NewAnalyzer builds an analyzer for lang. Stemming is skipped unless stem
// is true.
func NewAnalyzer(lang string, stem bool) (*Analyzer, error) {
	canonical, err := stemmer.Canonical(lang)
	if err != nil {
		return nil, err
	}
	a := &Analyzer{Language: canonical, tag: stemmer.Tag(canonical)}
	if stem {
		if a.Stemmer, err = stemmer.New(canonical); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Lower lower-cases s with the analyzer's locale rules.
func (a *Analyzer) Lower(s string) string {
	// a Caser is stateful, one per call keeps Analyze safe across goroutines
	return cases.Lower(a.tag).String(s)
}

// Analyze tokenizes text and runs the filter chain.
func (a *Analyzer) Analyze(text string) []string {
	tokens := Tokenize(text)
	tokens = a.lowercaseFilter(tokens)
	tokens = stopwordFilter(a.Language, tokens)
	tokens = a.stemmerFilter(tokens)
	return tokens
}

// Key returns the dedup key of a term: normalized and, with stemming on,
// each word replaced by its stem.
func (a *Analyzer) Key(term string) string {
	term = a.NormalizeTerm(term)
	if a.Stemmer == nil || term == "" {
		return term
	}
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = a.Stemmer.Stem(w)
	}
	return strings.Join(words, " ")
}

func (a *Analyzer) stemmerFilter(tokens []string) []string {
	if a.Stemmer == nil {
		return tokens
	}
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = a.Stemmer.Stem(token)
	}
	return r
}
