package lexgo

import (
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/postings"
	"github.com/hupe1980/lexgo/ranker"
	"github.com/hupe1980/lexgo/sieve"
)

// Result is one ranked query hit.
type Result struct {
	Score    float64
	Document corpus.Document
}

// SearchEngine evaluates free-text queries against an inverted index
// using N-of-M matching: a document qualifies when it contains at
// least N of the query's M distinct terms, with N derived from the
// per-query match threshold. Matching documents are scored by a
// caller-supplied Ranker and the best HitCount are returned.
//
// The engine holds no per-query state; a single SearchEngine is safe
// for concurrent use as long as each Evaluate call gets its own
// Ranker.
type SearchEngine struct {
	corpus corpus.Corpus
	index  index.Index
	logger *Logger
}

// NewSearchEngine creates a SearchEngine over the given corpus and the
// index built from it.
func NewSearchEngine(c corpus.Corpus, idx index.Index, optFns ...EngineOption) *SearchEngine {
	opts := engineOptions{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SearchEngine{
		corpus: c,
		index:  idx,
		logger: opts.logger,
	}
}

// queryTerm is one distinct query term with its repetition count in
// the query.
type queryTerm struct {
	term         string
	multiplicity int
}

// Evaluate runs N-of-M ranked retrieval for the query. Results come
// back in descending score order, at most opts.HitCount of them. A
// query whose terms are all out of vocabulary (or that yields no terms
// at all) returns an empty result, not an error.
func (e *SearchEngine) Evaluate(query string, opts Options, r ranker.Ranker) ([]Result, error) {
	if err := opts.validate(); err != nil {
		e.logger.LogEvaluate(query, 0, 0, 0, err)
		return nil, err
	}

	// The query runs through the same processing pipeline as the
	// indexed documents. Duplicated terms feed scoring via their
	// multiplicity; distinct terms drive the merge.
	seen := make(map[string]int)
	var terms []queryTerm
	for _, term := range e.index.Terms(query) {
		if i, ok := seen[term]; ok {
			terms[i].multiplicity++
			continue
		}
		seen[term] = len(terms)
		terms = append(terms, queryTerm{term: term, multiplicity: 1})
	}

	m := len(terms)
	if m == 0 {
		e.logger.LogEvaluate(query, 0, 0, 0, nil)
		return nil, nil
	}

	// At least N of the M distinct terms must be present: never below
	// 1 (a vanishing threshold still means OR), never above M.
	required := int(opts.MatchThreshold * float64(m))
	if required < 1 {
		required = 1
	}
	if required > m {
		required = m
	}

	// One ascending cursor per distinct term. Out-of-vocabulary terms
	// yield exhausted cursors and drop out immediately.
	cursors := make([]postings.Iterator, m)
	active := make([]int, 0, m)
	for i, qt := range terms {
		cursors[i] = e.index.Postings(qt.term)
		if cursors[i].Valid() {
			active = append(active, i)
		}
	}

	sv := sieve.New(opts.HitCount)
	frontier := make([]int, 0, m)

	// Document-at-a-time traversal. Once fewer than N cursors remain,
	// no further document can reach the threshold.
	for len(active) >= required {
		// The frontier is the subset of active cursors positioned at
		// the smallest pending document id.
		frontier = frontier[:0]
		minID := cursors[active[0]].Current().DocumentID
		for _, i := range active[1:] {
			if id := cursors[i].Current().DocumentID; id < minID {
				minID = id
			}
		}
		for _, i := range active {
			if cursors[i].Current().DocumentID == minID {
				frontier = append(frontier, i)
			}
		}

		if len(frontier) >= required {
			r.Reset(minID)
			for _, i := range frontier {
				r.Update(terms[i].term, terms[i].multiplicity, cursors[i].Current())
			}
			score := r.Evaluate()
			sv.Offer(score, minID)
			e.logger.Debug("match",
				"query", query,
				"document", minID,
				"matched_terms", len(frontier),
				"score", score,
			)
		}

		// Only frontier cursors advance; the rest stay put. Exhausted
		// cursors deactivate.
		for _, i := range frontier {
			cursors[i].Advance()
		}
		remaining := active[:0]
		for _, i := range active {
			if cursors[i].Valid() {
				remaining = append(remaining, i)
			}
		}
		active = remaining
	}

	winners := sv.Winners()
	results := make([]Result, 0, len(winners))
	for _, w := range winners {
		doc, ok := e.corpus.Document(w.DocumentID)
		if !ok {
			err := &ErrUnknownDocument{DocumentID: w.DocumentID}
			e.logger.LogEvaluate(query, m, required, 0, err)
			return nil, err
		}
		results = append(results, Result{Score: w.Score, Document: doc})
	}

	e.logger.LogEvaluate(query, m, required, len(results), nil)

	return results, nil
}
