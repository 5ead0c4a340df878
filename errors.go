package lexgo

import (
	"fmt"

	"github.com/hupe1980/lexgo/postings"
)

// ErrInvalidMatchThreshold indicates a match threshold outside (0, 1].
//
// Out-of-range thresholds are rejected rather than clamped, so a query
// is never answered under different semantics than the caller asked
// for.
type ErrInvalidMatchThreshold struct {
	Threshold float64
}

func (e *ErrInvalidMatchThreshold) Error() string {
	return fmt.Sprintf("match threshold must be in (0, 1], got %g", e.Threshold)
}

// ErrInvalidHitCount indicates a non-positive hit count.
type ErrInvalidHitCount struct {
	HitCount int
}

func (e *ErrInvalidHitCount) Error() string {
	return fmt.Sprintf("hit count must be positive, got %d", e.HitCount)
}

// ErrUnknownDocument indicates an index posting referencing a document
// the corpus cannot resolve. It signals an index/corpus mismatch.
type ErrUnknownDocument struct {
	DocumentID postings.DocumentID
}

func (e *ErrUnknownDocument) Error() string {
	return fmt.Sprintf("document %d not present in corpus", e.DocumentID)
}
