package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"Dobrý deň", []string{"Dobrý", "deň"}},
		{"„Čo robíš?“ spýtal sa.", []string{"Čo", "robíš", "spýtal", "sa"}},
		{"a+b=c; x/y_z#1", []string{"a", "b", "c", "x", "y", "z", "1"}},
		{"dvad-sať\tdva\n(tri)", []string{"dvad", "sať", "dva", "tri"}},
		// ! and ' are not separators
		{"ahoj! don't", []string{"ahoj!", "don't"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.input), tt.input)
	}
}

func TestAnalyzeSlovak(t *testing.T) {
	a, err := NewAnalyzer("sk", true)
	require.NoError(t, err)

	got := a.Analyze("V MESTÁCH a na uliciach je veľa ľudí")
	assert.Equal(t, []string{"mest", "ulik", "vel", "ľud"}, got)
}

func TestAnalyzeWithoutStemming(t *testing.T) {
	a, err := NewAnalyzer("english", false)
	require.NoError(t, err)
	assert.Nil(t, a.Stemmer)
	assert.Equal(t, []string{"cats", "running"}, a.Analyze("The cats and running"))
}

func TestAnalyzeEnglish(t *testing.T) {
	a, err := NewAnalyzer("english", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "run"}, a.Analyze("The cats and running"))
}

func TestNewAnalyzerUnsupported(t *testing.T) {
	_, err := NewAnalyzer("esperanto", true)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	plain, err := NewAnalyzer("slovak", false)
	require.NoError(t, err)
	stemming, err := NewAnalyzer("slovak", true)
	require.NoError(t, err)

	assert.Equal(t, "veľké mestá", plain.Key("  Veľké \t MESTÁ "))
	assert.Equal(t, "mestách", plain.Key("mestách"))
	assert.Equal(t, "mest", stemming.Key("Mestách"))
	assert.Equal(t, stemming.Key("mesto"), stemming.Key("mestách"))
	assert.Equal(t, "", stemming.Key("   "))
}

func TestIsIgnoredTerm(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"ja", true},
		{"ťa", true},
		{"deň", false},
		{"1984", true},
		{"3d", true},
		{"mesto", false},
		{"a1b", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsIgnoredTerm(tt.term), tt.term)
	}
}
