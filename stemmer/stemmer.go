// Package stemmer reduces words to stems. Slovak uses the rule pipeline in
// this package; other languages go through snowball.
package stemmer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned by New for unknown language names.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Stemmer maps a lower-cased word to its stem. Implementations are safe for
// concurrent use.
type Stemmer interface {
	Stem(word string) string
}

const slovak = "slovak"

var tags = map[string]language.Tag{
	slovak:      language.Slovak,
	"english":   language.English,
	"spanish":   language.Spanish,
	"french":    language.French,
	"russian":   language.Russian,
	"swedish":   language.Swedish,
	"norwegian": language.Norwegian,
	"hungarian": language.Hungarian,
}

// Canonical resolves a language name or its ISO 639-1 code ("sk", "en")
// to the name used by New.
func Canonical(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := tags[name]; ok {
		return name, nil
	}
	if t, err := language.Parse(name); err == nil {
		base, _ := t.Base()
		for lang, tag := range tags {
			if b, _ := tag.Base(); b == base {
				return lang, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
}

// New returns the stemmer for the named language.
func New(name string) (Stemmer, error) {
	lang, err := Canonical(name)
	if err != nil {
		return nil, err
	}
	if lang == slovak {
		return Slovak{}, nil
	}
	return snowballStemmer{language: lang}, nil
}

// Languages lists the names accepted by New.
func Languages() []string {
	out := make([]string, 0, len(tags))
	for lang := range tags {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Tag returns the BCP 47 tag for a language, or language.Und when the
// language is unknown.
func Tag(name string) language.Tag {
	lang, err := Canonical(name)
	if err != nil {
		return language.Und
	}
	return tags[lang]
}

type snowballStemmer struct {
	language string
}

func (s snowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, false)
	if err != nil {
		return word
	}
	return stemmed
}
