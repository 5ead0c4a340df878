// Package ranker provides per-document scoring strategies for ranked
// retrieval.
//
// A Ranker is a short-lived accumulator driven through a
// Reset/Update/Evaluate cycle, one cycle per candidate document. It is
// stateful and must not be shared across concurrently evaluated
// queries.
package ranker

import "github.com/hupe1980/lexgo/postings"

// Ranker scores one candidate document per Reset/Update/Evaluate cycle.
type Ranker interface {
	// Reset begins a new scoring cycle for the given document and
	// clears all accumulator state.
	Reset(id postings.DocumentID)

	// Update folds one matched query term into the score. It is called
	// once per distinct query term the candidate document contains.
	// The posting's document id must equal the id passed to the most
	// recent Reset; a mismatch is a programming error and panics.
	Update(term string, multiplicity int, p postings.Posting)

	// Evaluate returns the finalized score for the current document.
	// Valid only after at least one Reset.
	Evaluate() float64
}
