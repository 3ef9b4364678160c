package model

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTokenPattern is the word pattern fitted vectorizers use unless
// trained with something else: runs of two or more word characters.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

// Accent stripping modes
const (
	AccentsNone    = ""
	AccentsASCII   = "ascii"
	AccentsUnicode = "unicode"
)

// analyzer turns text into the terms a vectorizer counts
type analyzer struct {
	lowercase bool
	accents   string
	pattern   *regexp.Regexp // nil selects the built-in word tokenizer
	minWord   int            // shortest word the built-in tokenizer keeps
	stopWords map[string]struct{}
	minN      int
	maxN      int
}

func newAnalyzer(art *VectorizerArtifact) (*analyzer, error) {
	a := &analyzer{
		lowercase: art.Lowercase,
		minN:      art.NgramRange[0],
		maxN:      art.NgramRange[1],
	}
	if a.minN == 0 && a.maxN == 0 {
		a.minN, a.maxN = 1, 1
	}
	if a.minN < 1 || a.maxN < a.minN {
		return nil, invalidf("ngram_range [%d, %d]", a.minN, a.maxN)
	}

	switch art.StripAccents {
	case AccentsNone, AccentsASCII, AccentsUnicode:
		a.accents = art.StripAccents
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "strip_accents %q", art.StripAccents)
	}

	if n, ok := wordRunLength(art.TokenPattern); ok {
		a.minWord = n
	} else {
		re, err := compileTokenPattern(art.TokenPattern)
		if err != nil {
			return nil, err
		}
		a.pattern = re
	}

	if len(art.StopWords) > 0 {
		a.stopWords = make(map[string]struct{}, len(art.StopWords))
		for _, w := range art.StopWords {
			a.stopWords[w] = struct{}{}
		}
	}

	return a, nil
}

// wordRunPattern matches token patterns of the form \b\w...\w+\b and
// \b\w{n,}\b, which select maximal word runs of a minimum length.
var wordRunPattern = regexp.MustCompile(`^(?:\(\?u\))?\\b((?:\\w)*)(?:\\w\+|\\w\{(\d+),\})\\b$`)

// wordRunLength reports the minimum run length when pattern only selects
// word runs. An empty pattern is the default.
func wordRunLength(pattern string) (int, bool) {
	if pattern == "" {
		return 2, true
	}
	m := wordRunPattern.FindStringSubmatch(pattern)
	if m == nil {
		return 0, false
	}
	n := strings.Count(m[1], `\w`)
	if m[2] == "" {
		return n + 1, true
	}
	least, err := strconv.Atoi(m[2])
	if err != nil || least < 1 {
		return 0, false
	}
	return n + least, true
}

// unicodeEscapes spells the Unicode-aware class escapes of fitted patterns in
// RE2 syntax, where \w, \d and \s are ASCII-only. inside is the form used
// within a bracketed class; negated escapes have none.
var unicodeEscapes = map[byte]struct{ outside, inside string }{
	'w': {`[\p{L}\p{N}_]`, `\p{L}\p{N}_`},
	'W': {`[^\p{L}\p{N}_]`, ""},
	'd': {`\p{Nd}`, `\p{Nd}`},
	'D': {`\P{Nd}`, `\P{Nd}`},
	's': {`[\s\x0B\x1C-\x1F\x{85}\p{Z}]`, `\s\x0B\x1C-\x1F\x{85}\p{Z}`},
	'S': {`[^\s\x0B\x1C-\x1F\x{85}\p{Z}]`, ""},
}

// translatePattern rewrites class escapes to their Unicode forms. Word
// boundaries are rejected since RE2 only knows ASCII ones.
func translatePattern(pattern string) (string, error) {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			i++
			esc := pattern[i]
			if esc == 'b' || esc == 'B' {
				return "", errors.Wrapf(ErrUnsupportedType, "token_pattern %q: \\%c outside a plain word run", pattern, esc)
			}
			class, ok := unicodeEscapes[esc]
			switch {
			case !ok:
				b.WriteByte('\\')
				b.WriteByte(esc)
			case !inClass:
				b.WriteString(class.outside)
			case class.inside == "":
				return "", errors.Wrapf(ErrUnsupportedType, "token_pattern %q: \\%c inside a class", pattern, esc)
			default:
				b.WriteString(class.inside)
			}
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
				b.WriteByte('^')
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
				b.WriteByte(']')
			}
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func compileTokenPattern(pattern string) (*regexp.Regexp, error) {
	expr, err := translatePattern(strings.TrimPrefix(pattern, "(?u)"))
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "token_pattern %q", pattern), ErrInvalidArtifact)
	}
	if re.NumSubexp() > 1 {
		return nil, invalidf("token_pattern %q has %d capture groups, at most one allowed", pattern, re.NumSubexp())
	}
	return re, nil
}

func (a *analyzer) analyze(text string) []string {
	if a.lowercase {
		text = lower(text)
	}
	if a.accents != AccentsNone {
		text = stripAccents(text, a.accents)
	}

	tokens := a.tokenize(text)
	if a.stopWords != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if _, stop := a.stopWords[tok]; !stop {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	return wordNgrams(tokens, a.minN, a.maxN)
}

func (a *analyzer) tokenize(text string) []string {
	if a.pattern == nil {
		return wordTokens(text, a.minWord)
	}
	if a.pattern.NumSubexp() == 0 {
		return a.pattern.FindAllString(text, -1)
	}
	matches := a.pattern.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// wordTokens splits text into maximal runs of word characters and keeps
// runs of at least minLen characters.
func wordTokens(text string, minLen int) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendWord(tokens, text[start:i], minLen)
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendWord(tokens, text[start:], minLen)
	}
	return tokens
}

func appendWord(tokens []string, word string, minLen int) []string {
	if utf8.RuneCountInString(word) < minLen {
		return tokens
	}
	return append(tokens, word)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func wordNgrams(tokens []string, minN, maxN int) []string {
	if maxN == 1 {
		return tokens
	}

	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN = 2
	}
	for n := minN; n <= maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// lower applies full Unicode lowercasing, including the final sigma rule.
// A Caser keeps state, so each call gets its own.
func lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

func stripAccents(text, mode string) string {
	if isASCII(text) {
		return text
	}
	decomposed := norm.NFKD.String(text)

	if mode == AccentsASCII {
		var b strings.Builder
		b.Grow(len(decomposed))
		for _, r := range decomposed {
			if r < utf8.RuneSelf {
				b.WriteRune(r)
			}
		}
		return b.String()
	}

	stripped, _, err := transform.String(runes.Remove(runes.Predicate(isCombining)), decomposed)
	if err != nil {
		return decomposed
	}
	return stripped
}

// isCombining reports a non-zero canonical combining class
func isCombining(r rune) bool {
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
