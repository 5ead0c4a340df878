package ranker

import (
	"fmt"

	"github.com/hupe1980/lexgo/postings"
)

// FrequencyRanker scores a document by summing, over the matched query
// terms, the query multiplicity times the in-document term frequency.
type FrequencyRanker struct {
	documentID postings.DocumentID
	score      float64
	active     bool
}

// NewFrequencyRanker creates a new FrequencyRanker.
func NewFrequencyRanker() *FrequencyRanker {
	return &FrequencyRanker{}
}

var _ Ranker = (*FrequencyRanker)(nil)

func (r *FrequencyRanker) Reset(id postings.DocumentID) {
	r.documentID = id
	r.score = 0
	r.active = true
}

func (r *FrequencyRanker) Update(term string, multiplicity int, p postings.Posting) {
	if !r.active {
		panic("ranker: Update before Reset")
	}
	if p.DocumentID != r.documentID {
		panic(fmt.Sprintf("ranker: posting for document %d during cycle for document %d", p.DocumentID, r.documentID))
	}
	r.score += float64(multiplicity) * float64(p.TermFrequency)
}

func (r *FrequencyRanker) Evaluate() float64 {
	if !r.active {
		panic("ranker: Evaluate before Reset")
	}
	return r.score
}
