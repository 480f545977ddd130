package stemmer

import (
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"najžľaznatejšieho", "žľaznat"},
		{"zefektívnenie", "zefektívnn"},
		{"umožnenie", "umožnn"},

		// case endings
		{"mesto", "mest"},
		{"mestách", "mest"},
		{"ženy", "žen"},
		{"ženami", "žen"},
		{"ruka", "ruk"},
		{"peknejšiemu", "pekn"},

		// superlative prefix
		{"najlepší", "lepš"},
		{"naj", "naj"},

		// possessives
		{"matkin", "matk"},

		// soft finals
		{"ulica", "ulik"},
		{"ulici", "ulik"},
		{"ulicami", "ulik"},
		{"otcov", "otk"},
		{"kôň", "kôn"},

		// i+vowel collapse, then e* collapse
		{"papier", "papr"},

		// ok / ol
		{"potok", "potk"},
		{"kotol", "kotl"},

		// short words
		{"a", "a"},
		{"ty", "ty"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.input))
		})
	}
}

func TestStemEmpty(t *testing.T) {
	assert.Equal(t, "", Stem(""))
}

func TestStemGroupGuard(t *testing.T) {
	// "tejšiemu" is too short for the 7-rune group, so the 4-rune "iemu"
	// ending applies instead.
	assert.Equal(t, "tejš", Stem("tejšiemu"))
}

func TestRemoveCasePrefersLongestGroup(t *testing.T) {
	s := []rune("žľaznatejšieho")
	// also ends with "ho" and "eho"
	assert.Equal(t, len(s)-7, removeCase(s, len(s)))
}

func TestRemoveCaseVowel(t *testing.T) {
	for _, v := range caseVowels {
		s := []rune("vlak" + string(v))
		assert.Equal(t, 4, removeCase(s, len(s)), string(s))
	}
	// ô is not stripped
	assert.Equal(t, 5, removeCase([]rune("vlakô"), 5))
	// too short
	assert.Equal(t, 3, removeCase([]rune("oko"), 3))
}

func TestRemoveCaseRespectsActiveLength(t *testing.T) {
	s := []rune("ženamixxxx")
	assert.Equal(t, 3, removeCase(s, 6))
}

func TestRemovePossessives(t *testing.T) {
	assert.Equal(t, 4, removePossessives([]rune("matkin"), 6))
	assert.Equal(t, 4, removePossessives([]rune("bratov"), 6))
	assert.Equal(t, 4, removePossessives([]rune("matkinho"), 6))
	assert.Equal(t, 5, removePossessives([]rune("otcov"), 5))
	assert.Equal(t, 6, removePossessives([]rune("matkou"), 6))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ulic", "ulik"},
		{"kľúč", "kľúk"},
		{"kráľ", "král"},
		{"deň", "den"},
		{"sneť", "snet"},
		{"papier", "paper"},
		{"priam", "pram"},
		{"kliub", "klub"},
		{"dom", "dom"},
	}
	for _, tt := range tests {
		s, n := normalize([]rune(tt.input), utf8.RuneCountInString(tt.input))
		assert.Equal(t, tt.want, string(s[:n]), tt.input)
	}
}

func TestNormalizeTail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"umožnen", "umožnn"},
		{"potok", "potk"},
		{"kotol", "kotl"},
		{"pes", "pes"},
		{"stôl", "stôl"},
		{"kosť", "kosť"},
	}
	for _, tt := range tests {
		s, n := normalizeTail([]rune(tt.input), utf8.RuneCountInString(tt.input))
		assert.Equal(t, tt.want, string(s[:n]), tt.input)
	}
}

func TestCaseSuffixTable(t *testing.T) {
	require.NotEmpty(t, caseSuffixes)
	seen := map[string]bool{}
	prev := caseSuffixes[0].remove + 1
	for _, g := range caseSuffixes {
		assert.Less(t, g.remove, prev, "groups must be ordered longest removal first")
		prev = g.remove
		for _, suffix := range g.suffixes {
			assert.Equal(t, g.remove, utf8.RuneCountInString(suffix), suffix)
			assert.False(t, seen[suffix], "duplicate suffix %q", suffix)
			seen[suffix] = true
		}
	}
}

var sample = []string{
	"najžľaznatejšieho", "zefektívnenie", "umožnenie", "mestách",
	"ženami", "ulicami", "papier", "potok", "kotol", "najlepší",
	"slovenčina", "obyvateľov", "priateľmi", "dievčatami", "kniha",
}

func TestStemDeterministicAndShorter(t *testing.T) {
	for _, w := range sample {
		got := Stem(w)
		assert.Equal(t, got, Stem(w))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), utf8.RuneCountInString(w), w)
	}
}

func TestStemConcurrent(t *testing.T) {
	want := make([]string, len(sample))
	for i, w := range sample {
		want[i] = Stem(w)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range sample {
				assert.Equal(t, want[i], Stem(w))
			}
		}()
	}
	wg.Wait()
}
