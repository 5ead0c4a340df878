package lexgo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo"
	"github.com/hupe1980/lexgo/analysis"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/postings"
	"github.com/hupe1980/lexgo/ranker"
)

func fruitEngine(t *testing.T) (*lexgo.SearchEngine, *corpus.InMemoryCorpus) {
	t.Helper()

	c := corpus.NewInMemoryCorpus()
	c.AddFields(map[string]any{"body": "orange apple"})
	c.AddFields(map[string]any{"body": "apple banana"})
	c.AddFields(map[string]any{"body": "orange banana apple"})

	idx, err := index.New(c, []string{"body"},
		analysis.NewSimpleNormalizer(), analysis.NewSimpleTokenizer())
	require.NoError(t, err)

	return lexgo.NewSearchEngine(c, idx), c
}

func resultIDs(results []lexgo.Result) []postings.DocumentID {
	ids := make([]postings.DocumentID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Document.DocumentID())
	}
	return ids
}

func TestSearchEngine_NOfM(t *testing.T) {
	engine, _ := fruitEngine(t)

	// M=3 and a 0.67 threshold require 2 of 3 terms. All documents
	// qualify; the one containing all three terms scores highest, the
	// two tied documents keep arrival order.
	results, err := engine.Evaluate("orange apple banana",
		lexgo.Options{MatchThreshold: 0.67, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, []postings.DocumentID{2, 0, 1}, resultIDs(results))
	assert.Equal(t, 3.0, results[0].Score)
	assert.Equal(t, 2.0, results[1].Score)
	assert.Equal(t, 2.0, results[2].Score)
}

func TestSearchEngine_ThresholdOneIsAND(t *testing.T) {
	engine, _ := fruitEngine(t)

	results, err := engine.Evaluate("orange apple banana",
		lexgo.Options{MatchThreshold: 1.0, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)

	// Only the document containing all three terms survives.
	assert.Equal(t, []postings.DocumentID{2}, resultIDs(results))
}

func TestSearchEngine_VanishingThresholdIsOR(t *testing.T) {
	engine, _ := fruitEngine(t)

	// N bottoms out at 1 however small the threshold gets.
	results, err := engine.Evaluate("orange",
		lexgo.Options{MatchThreshold: 0.0001, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)

	assert.Equal(t, []postings.DocumentID{0, 2}, resultIDs(results))
}

func TestSearchEngine_QueryMultiplicityFeedsScoring(t *testing.T) {
	engine, _ := fruitEngine(t)

	// "apple apple" is one distinct term with multiplicity 2.
	results, err := engine.Evaluate("apple apple",
		lexgo.Options{MatchThreshold: 1.0, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 2.0, r.Score)
	}
}

func TestSearchEngine_OutOfVocabularyTerm(t *testing.T) {
	engine, _ := fruitEngine(t)

	// The unknown term still counts towards M, so full conjunction can
	// never be reached.
	results, err := engine.Evaluate("orange xyzzy",
		lexgo.Options{MatchThreshold: 1.0, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)
	assert.Empty(t, results)

	// At a half threshold one of the two terms suffices.
	results, err = engine.Evaluate("orange xyzzy",
		lexgo.Options{MatchThreshold: 0.5, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)
	assert.Equal(t, []postings.DocumentID{0, 2}, resultIDs(results))
}

func TestSearchEngine_AllTermsUnknown(t *testing.T) {
	engine, _ := fruitEngine(t)

	results, err := engine.Evaluate("xyzzy plugh",
		lexgo.Options{MatchThreshold: 0.5, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEngine_EmptyQuery(t *testing.T) {
	engine, _ := fruitEngine(t)

	results, err := engine.Evaluate("  ...  ",
		lexgo.Options{MatchThreshold: 0.5, HitCount: 10},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEngine_HitCountCapsResults(t *testing.T) {
	engine, _ := fruitEngine(t)

	results, err := engine.Evaluate("orange apple banana",
		lexgo.Options{MatchThreshold: 0.67, HitCount: 1},
		ranker.NewFrequencyRanker())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, postings.DocumentID(2), results[0].Document.DocumentID())
}

func TestSearchEngine_InvalidOptions(t *testing.T) {
	engine, _ := fruitEngine(t)
	r := ranker.NewFrequencyRanker()

	tests := []struct {
		name string
		opts lexgo.Options
	}{
		{name: "zero threshold", opts: lexgo.Options{MatchThreshold: 0, HitCount: 10}},
		{name: "negative threshold", opts: lexgo.Options{MatchThreshold: -0.5, HitCount: 10}},
		{name: "threshold above one", opts: lexgo.Options{MatchThreshold: 1.2, HitCount: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate("orange", tt.opts, r)
			var te *lexgo.ErrInvalidMatchThreshold
			assert.ErrorAs(t, err, &te)
		})
	}

	_, err := engine.Evaluate("orange", lexgo.Options{MatchThreshold: 0.5, HitCount: 0}, r)
	var he *lexgo.ErrInvalidHitCount
	assert.ErrorAs(t, err, &he)
}

func TestSearchEngine_TFIDFPrefersStaticQuality(t *testing.T) {
	c := corpus.NewInMemoryCorpus()
	c.AddFields(map[string]any{"body": "orange juice"})
	c.AddFields(map[string]any{"body": "orange peel", "static_quality_score": 1.0})

	idx, err := index.New(c, []string{"body"},
		analysis.NewSimpleNormalizer(), analysis.NewSimpleTokenizer())
	require.NoError(t, err)

	engine := lexgo.NewSearchEngine(c, idx)
	results, err := engine.Evaluate("orange",
		lexgo.Options{MatchThreshold: 1.0, HitCount: 10},
		ranker.NewTFIDFRanker(c, idx))
	require.NoError(t, err)

	// Equal dynamic scores; the static bonus breaks the tie.
	require.Len(t, results, 2)
	assert.Equal(t, postings.DocumentID(1), results[0].Document.DocumentID())
}

func TestSearchEngine_BatchEvaluate(t *testing.T) {
	engine, _ := fruitEngine(t)
	opts := lexgo.Options{MatchThreshold: 0.5, HitCount: 10}

	queries := []string{"orange", "apple banana", "kiwi"}
	batched, err := engine.BatchEvaluate(context.Background(), queries, opts,
		func() ranker.Ranker { return ranker.NewFrequencyRanker() })
	require.NoError(t, err)
	require.Len(t, batched, len(queries))

	for i, query := range queries {
		want, err := engine.Evaluate(query, opts, ranker.NewFrequencyRanker())
		require.NoError(t, err)
		assert.Equal(t, resultIDs(want), resultIDs(batched[i]), query)
	}
}

func TestSearchEngine_BatchEvaluateInvalidOptions(t *testing.T) {
	engine, _ := fruitEngine(t)

	_, err := engine.BatchEvaluate(context.Background(), []string{"orange"},
		lexgo.Options{MatchThreshold: 2, HitCount: 10},
		func() ranker.Ranker { return ranker.NewFrequencyRanker() })
	assert.Error(t, err)
}
