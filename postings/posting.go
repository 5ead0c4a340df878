package postings

import "fmt"

// DocumentID identifies a document within the indexed corpus.
type DocumentID uint32

// Posting records how often a term occurs in one document.
// A posting exists for a (term, document) pair only if the term occurs
// in the document at least once.
type Posting struct {
	DocumentID    DocumentID
	TermFrequency int
}

// String returns a string representation of the Posting.
func (p Posting) String() string {
	return fmt.Sprintf("(%d, TF %d)", p.DocumentID, p.TermFrequency)
}
