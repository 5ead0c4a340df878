// Package analysis defines the text-processing collaborators of the
// inverted index: a Normalizer for text cleanup and token folding, and
// a Tokenizer for segmentation. Index build and query evaluation must
// run the identical canonicalize, segment, normalize pipeline or
// lookups silently fail to match.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalizer folds text into a canonical form. Implementations must be
// pure and stateless.
type Normalizer interface {
	// Canonicalize cleans up a whole text buffer before segmentation.
	Canonicalize(text string) string

	// Normalize folds a single token after segmentation.
	Normalize(token string) string
}

// Tokenizer splits a canonicalized buffer into token substrings.
// Implementations must be pure and stateless.
type Tokenizer interface {
	Segment(text string) []string
}

// SimpleNormalizer trims and space-normalizes buffers and lowercases
// tokens.
type SimpleNormalizer struct{}

// NewSimpleNormalizer creates a new SimpleNormalizer.
func NewSimpleNormalizer() *SimpleNormalizer {
	return &SimpleNormalizer{}
}

var _ Normalizer = (*SimpleNormalizer)(nil)

func (n *SimpleNormalizer) Canonicalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func (n *SimpleNormalizer) Normalize(token string) string {
	return strings.ToLower(token)
}

// SimpleTokenizer segments a buffer into maximal runs of Unicode
// letters and digits. Everything else is a separator.
type SimpleTokenizer struct{}

// NewSimpleTokenizer creates a new SimpleTokenizer.
func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

var _ Tokenizer = (*SimpleTokenizer)(nil)

func (t *SimpleTokenizer) Segment(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, text[start:i])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ShingleTokenizer segments a buffer into overlapping character
// k-grams. For width 3, "mouse" yields "mou", "ous", "use". A buffer
// shorter than the width yields one shorter shingle. It is not
// whitespace- or punctuation-aware.
type ShingleTokenizer struct {
	width int
}

// NewShingleTokenizer creates a ShingleTokenizer with the given width.
// Width must be positive.
func NewShingleTokenizer(width int) *ShingleTokenizer {
	if width <= 0 {
		panic("analysis: shingle width must be positive")
	}
	return &ShingleTokenizer{width: width}
}

var _ Tokenizer = (*ShingleTokenizer)(nil)

func (t *ShingleTokenizer) Segment(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < t.width {
		return []string{string(runes)}
	}
	shingles := make([]string, 0, len(runes)-t.width+1)
	for i := 0; i+t.width <= len(runes); i++ {
		shingles = append(shingles, string(runes[i:i+t.width]))
	}
	return shingles
}
