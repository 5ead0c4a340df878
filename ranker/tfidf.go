package ranker

import (
	"fmt"
	"math"

	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/postings"
)

// DefaultStaticField is the document field holding the static quality
// score. Missing or non-numeric values default to 0.
const DefaultStaticField = "static_quality_score"

// TFIDFOptions configures a TFIDFRanker.
type TFIDFOptions struct {
	// DynamicWeight scales the static bonus together with StaticWeight.
	DynamicWeight float64

	// StaticWeight scales the static quality score.
	StaticWeight float64

	// StaticField names the document field holding the static quality
	// score.
	StaticField string

	// StaticBonusPerDocument, when true, adds the static quality bonus
	// once per document instead of once per matched query term. The
	// default (false) reproduces the historical combination rule, which
	// inflates the bonus for documents matching more terms.
	StaticBonusPerDocument bool
}

// TFIDFRanker combines TF-IDF term weighting with a static per-document
// quality score: per matched term, log-damped term frequency times
// inverse document frequency, times the query multiplicity. The static
// quality score, read from the document with a 0.0 fallback, is added
// scaled by the configured weights.
type TFIDFRanker struct {
	corpus corpus.Corpus
	index  index.Index
	opts   TFIDFOptions

	documentID  postings.DocumentID
	score       float64
	staticAdded bool
	active      bool
}

// NewTFIDFRanker creates a TFIDFRanker over the given corpus and index.
func NewTFIDFRanker(c corpus.Corpus, idx index.Index, optFns ...func(*TFIDFOptions)) *TFIDFRanker {
	opts := TFIDFOptions{
		DynamicWeight: 1.0,
		StaticWeight:  1.0,
		StaticField:   DefaultStaticField,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TFIDFRanker{corpus: c, index: idx, opts: opts}
}

var _ Ranker = (*TFIDFRanker)(nil)

func (r *TFIDFRanker) Reset(id postings.DocumentID) {
	r.documentID = id
	r.score = 0
	r.staticAdded = false
	r.active = true
}

func (r *TFIDFRanker) Update(term string, multiplicity int, p postings.Posting) {
	if !r.active {
		panic("ranker: Update before Reset")
	}
	if p.DocumentID != r.documentID {
		panic(fmt.Sprintf("ranker: posting for document %d during cycle for document %d", p.DocumentID, r.documentID))
	}

	tf := math.Log10(float64(p.TermFrequency) + 1)
	df := r.index.DocumentFrequency(term)
	n := r.corpus.Size()
	idf := math.Log10(float64(n) / float64(df))
	r.score += float64(multiplicity) * tf * idf

	if r.opts.StaticBonusPerDocument && r.staticAdded {
		return
	}
	var static float64
	if doc, ok := r.corpus.Document(r.documentID); ok {
		static = doc.FloatField(r.opts.StaticField, 0.0)
	}
	r.score += static * r.opts.StaticWeight * r.opts.DynamicWeight
	r.staticAdded = true
}

func (r *TFIDFRanker) Evaluate() float64 {
	if !r.active {
		panic("ranker: Evaluate before Reset")
	}
	return r.score
}
