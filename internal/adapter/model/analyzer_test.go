package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "single characters dropped", text: "I loved that movie", expected: []string{"loved", "that", "movie"}},
		{name: "punctuation splits", text: "terrible, I hated it!", expected: []string{"terrible", "hated", "it"}},
		{name: "apostrophe splits", text: "don't", expected: []string{"don"}},
		{name: "underscores and digits are word characters", text: "top_10 a1", expected: []string{"top_10", "a1"}},
		{name: "non-ascii letters", text: "naïve übermensch", expected: []string{"naïve", "übermensch"}},
		{name: "empty", text: "", expected: nil},
		{name: "whitespace only", text: " \t\n", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wordTokens(tt.text, 2))
		})
	}
}

func TestWordTokens_MinLength(t *testing.T) {
	assert.Equal(t, []string{"i", "loved", "a", "naïve", "movie"}, wordTokens("I loved a naïve movie", 1))
	assert.Equal(t, []string{"loved", "naïve", "movie"}, wordTokens("I loved a naïve movie", 3))
}

func TestWordNgrams(t *testing.T) {
	tokens := []string{"not", "very", "good"}

	assert.Equal(t, tokens, wordNgrams(tokens, 1, 1))
	assert.Equal(t, []string{"not", "very", "good", "not very", "very good"}, wordNgrams(tokens, 1, 2))
	assert.Equal(t, []string{"not very", "very good", "not very good"}, wordNgrams(tokens, 2, 3))
	assert.Empty(t, wordNgrams([]string{"alone"}, 2, 2))
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mode     string
		expected string
	}{
		{name: "precomposed", text: "café crème", mode: AccentsUnicode, expected: "cafe creme"},
		{name: "already decomposed", text: "cafe\u0301", mode: AccentsUnicode, expected: "cafe"},
		{name: "ascii unchanged", text: "plain", mode: AccentsUnicode, expected: "plain"},
		{name: "compatibility forms fold", text: "\ufb01ne", mode: AccentsUnicode, expected: "fine"},
		{name: "ascii mode drops non-ascii", text: "café 東", mode: AccentsASCII, expected: "cafe "},
		{name: "ascii mode on decomposed", text: "nai\u0308ve", mode: AccentsASCII, expected: "naive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripAccents(tt.text, tt.mode))
		})
	}
}

func TestAnalyzer_Preprocess(t *testing.T) {
	t.Run("final sigma lowercases in context", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{Lowercase: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"οδος"}, a.analyze("ΟΔΟΣ"))
	})

	t.Run("lowercases before stripping accents", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{Lowercase: true, StripAccents: AccentsUnicode})
		require.NoError(t, err)

		assert.Equal(t, []string{"cafe", "creme"}, a.analyze("CAFE\u0301 Crème"))
	})
}

func TestAnalyzer_CustomPattern(t *testing.T) {
	t.Run("pattern without groups", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `(?u)\b\w+\b`, Lowercase: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"i", "loved", "it"}, a.analyze("I loved it"))
	})

	t.Run("single word characters keep non-ascii words whole", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `(?u)\b\w+\b`})
		require.NoError(t, err)

		assert.Nil(t, a.pattern)
		assert.Equal(t, []string{"naïve", "movie"}, a.analyze("naïve movie"))
	})

	t.Run("counted word runs", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `(?u)\b\w{3,}\b`})
		require.NoError(t, err)

		assert.Equal(t, []string{"the", "crème"}, a.analyze("a the crème"))
	})

	t.Run("pattern with one group", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `#(\w+)`})
		require.NoError(t, err)

		assert.Equal(t, []string{"happy", "naïve"}, a.analyze("#happy and #naïve"))
	})

	t.Run("digit and space classes are unicode", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `[^\s\d]+`})
		require.NoError(t, err)

		assert.Equal(t, []string{"top", "naïve"}, a.analyze("top\u00a0٣naïve"))
	})

	t.Run("rejects word boundaries elsewhere", func(t *testing.T) {
		_, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `\b\w+'\w+\b`})

		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("rejects negated escapes inside a class", func(t *testing.T) {
		_, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `[^\W\d]+`})

		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("default pattern uses built-in tokenizer", func(t *testing.T) {
		a, err := newAnalyzer(&VectorizerArtifact{TokenPattern: DefaultTokenPattern})
		require.NoError(t, err)

		assert.Nil(t, a.pattern)
	})

	t.Run("rejects multiple groups", func(t *testing.T) {
		_, err := newAnalyzer(&VectorizerArtifact{TokenPattern: `(\w)(\w)`})

		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})
}
