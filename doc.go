// Package lexgo provides a small embedded information-retrieval engine:
// an in-memory inverted index over a document collection, queried with
// a generalized N-of-M matching predicate and ranked by pluggable
// scoring strategies.
//
// # Quick Start
//
//	c := corpus.NewInMemoryCorpus()
//	c.AddFields(map[string]any{"body": "orange apple"})
//	c.AddFields(map[string]any{"body": "apple banana"})
//	c.AddFields(map[string]any{"body": "orange banana apple"})
//
//	idx, _ := index.New(c, []string{"body"},
//	    analysis.NewSimpleNormalizer(), analysis.NewSimpleTokenizer())
//
//	engine := lexgo.NewSearchEngine(c, idx)
//	results, _ := engine.Evaluate("orange apple banana",
//	    lexgo.Options{MatchThreshold: 0.67, HitCount: 10},
//	    ranker.NewFrequencyRanker())
//
// # N-of-M Matching
//
// A query with M distinct terms matches a document containing at least
// N of them, where N = clamp(floor(MatchThreshold*M), 1, M). The
// threshold smoothly interpolates between OR retrieval (vanishing
// threshold, N = 1) and AND retrieval (threshold 1.0, N = M).
//
// # Ranking
//
// Matching documents are scored by a ranker.Ranker: FrequencyRanker
// sums raw term frequencies, TFIDFRanker combines TF-IDF weighting
// with a static per-document quality score. The engine keeps only the
// best HitCount documents using a fixed-capacity sieve.
//
// # Concurrency
//
// Index construction is a one-time build; the index is immutable
// afterwards and safe for concurrent queries. Each evaluation owns its
// cursors, sieve and ranker, so no shared state crosses query
// boundaries. BatchEvaluate fans queries out across goroutines.
package lexgo
