package postings

import (
	"errors"
	"fmt"
)

var (
	// ErrFrozen is returned when appending to a frozen list.
	ErrFrozen = errors.New("posting list is frozen")
)

// ErrOutOfOrder indicates an append that violates the ascending,
// deduplicated document-id ordering of a posting list.
type ErrOutOfOrder struct {
	Last DocumentID
	Got  DocumentID
}

func (e *ErrOutOfOrder) Error() string {
	return fmt.Sprintf("posting out of order: document %d after %d", e.Got, e.Last)
}

// List is an append-only-then-frozen sequence of postings for one term,
// strictly ascending by document id. Len equals the term's document
// frequency. The backing representation (plain or block-compressed) is
// a build-time choice invisible to iteration.
type List interface {
	// Append adds a posting. The document id must be strictly greater
	// than that of the previously appended posting.
	Append(p Posting) error

	// Freeze makes the list read-only. Append fails afterwards.
	Freeze() error

	// Iterator returns an independent cursor positioned at the first
	// posting. Multiple simultaneous iterators do not interfere.
	Iterator() Iterator

	// Len returns the number of postings.
	Len() int
}

// MemoryList is a slice-backed List.
type MemoryList struct {
	postings []Posting
	frozen   bool
}

// NewMemoryList creates an empty uncompressed posting list.
func NewMemoryList() *MemoryList {
	return &MemoryList{}
}

var _ List = (*MemoryList)(nil)

func (l *MemoryList) Append(p Posting) error {
	if l.frozen {
		return ErrFrozen
	}
	if n := len(l.postings); n > 0 && p.DocumentID <= l.postings[n-1].DocumentID {
		return &ErrOutOfOrder{Last: l.postings[n-1].DocumentID, Got: p.DocumentID}
	}
	l.postings = append(l.postings, p)
	return nil
}

func (l *MemoryList) Freeze() error {
	l.frozen = true
	return nil
}

func (l *MemoryList) Iterator() Iterator {
	return &sliceIterator{postings: l.postings}
}

func (l *MemoryList) Len() int {
	return len(l.postings)
}
