package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/analysis"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/postings"
)

func buildCorpus(bodies ...string) *corpus.InMemoryCorpus {
	c := corpus.NewInMemoryCorpus()
	for _, body := range bodies {
		c.AddFields(map[string]any{"body": body})
	}
	return c
}

func buildIndex(t *testing.T, c corpus.Corpus, fields []string, optFns ...Option) *MemoryIndex {
	t.Helper()
	idx, err := New(c, fields, analysis.NewSimpleNormalizer(), analysis.NewSimpleTokenizer(), optFns...)
	require.NoError(t, err)
	return idx
}

func TestMemoryIndex_DocumentFrequency(t *testing.T) {
	bodies := []string{
		"orange apple",
		"apple banana",
		"orange banana apple",
		"kiwi",
	}
	c := buildCorpus(bodies...)
	idx := buildIndex(t, c, []string{"body"})

	// Document frequency must equal a straight count over the corpus.
	for _, term := range []string{"orange", "apple", "banana", "kiwi", "mango"} {
		want := 0
		for _, body := range bodies {
			if strings.Contains(" "+body+" ", " "+term+" ") {
				want++
			}
		}
		assert.Equal(t, want, idx.DocumentFrequency(term), term)
	}
}

func TestMemoryIndex_Postings(t *testing.T) {
	c := buildCorpus(
		"apple apple orange",
		"banana",
		"apple",
	)
	idx := buildIndex(t, c, []string{"body"})

	// One posting per (term, document), counts not duplicates.
	got := postings.Collect(idx.Postings("apple"))
	assert.Equal(t, []postings.Posting{
		{DocumentID: 0, TermFrequency: 2},
		{DocumentID: 2, TermFrequency: 1},
	}, got)
}

func TestMemoryIndex_UnknownTerm(t *testing.T) {
	idx := buildIndex(t, buildCorpus("orange"), []string{"body"})

	assert.Equal(t, 0, idx.DocumentFrequency("mango"))
	assert.False(t, idx.Postings("mango").Valid())
}

func TestMemoryIndex_QueryPipelineMatchesBuild(t *testing.T) {
	idx := buildIndex(t, buildCorpus("The Quick, Brown Fox!"), []string{"body"})

	// Query-side processing must be the identical pipeline, or lookups
	// silently miss.
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, idx.Terms("The Quick, Brown Fox!"))
	assert.Equal(t, 1, idx.DocumentFrequency("quick"))
}

func TestMemoryIndex_TermsKeepsMultiplicity(t *testing.T) {
	idx := buildIndex(t, buildCorpus("to be or not to be"), []string{"body"})

	assert.Equal(t, []string{"to", "be", "or", "not", "to", "be"}, idx.Terms("to be or not to be"))
}

func TestMemoryIndex_MultipleFields(t *testing.T) {
	c := corpus.NewInMemoryCorpus()
	c.AddFields(map[string]any{"title": "orange", "body": "apple"})
	c.AddFields(map[string]any{"body": "banana"}) // title missing

	idx := buildIndex(t, c, []string{"title", "body"})

	assert.Equal(t, 1, idx.DocumentFrequency("orange"))
	assert.Equal(t, 1, idx.DocumentFrequency("apple"))
	assert.Equal(t, 1, idx.DocumentFrequency("banana"))
	assert.Equal(t, 3, idx.VocabularySize())
}

func TestMemoryIndex_CompressedListsEquivalent(t *testing.T) {
	c := buildCorpus(
		"orange apple orange orange",
		"apple banana apple",
		"orange banana apple kiwi",
		"banana banana banana",
	)
	plain := buildIndex(t, c, []string{"body"})

	for _, compression := range []postings.Compression{
		postings.CompressionNone,
		postings.CompressionLZ4,
		postings.CompressionZSTD,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			compressed := buildIndex(t, c, []string{"body"}, WithCompressedLists(compression))

			for _, term := range []string{"orange", "apple", "banana", "kiwi"} {
				assert.Equal(t, plain.DocumentFrequency(term), compressed.DocumentFrequency(term), term)
				assert.Equal(t,
					postings.Collect(plain.Postings(term)),
					postings.Collect(compressed.Postings(term)), term)
			}
		})
	}
}

func TestMemoryIndex_IndependentQueryIterators(t *testing.T) {
	idx := buildIndex(t, buildCorpus("apple", "apple", "apple"), []string{"body"})

	a := idx.Postings("apple")
	b := idx.Postings("apple")
	a.Advance()

	assert.Equal(t, postings.DocumentID(0), b.Current().DocumentID)
	assert.Equal(t, postings.DocumentID(1), a.Current().DocumentID)
}
