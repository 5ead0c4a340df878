package postings

// Iterator is a forward cursor over an ascending, deduplicated posting
// stream. The merge algorithms in this package and the query evaluator
// depend only on this contract, not on how the stream is stored.
//
// Usage:
//
//	for it := list.Iterator(); it.Valid(); it.Advance() {
//	    p := it.Current()
//	    ...
//	}
//
// Current must only be called while Valid reports true.
type Iterator interface {
	// Valid reports whether the cursor references a posting.
	Valid() bool

	// Current returns the posting the cursor references.
	Current() Posting

	// Advance moves the cursor to the next posting, if any.
	Advance()
}

// Empty returns an iterator over the empty posting stream.
// Out-of-vocabulary terms resolve to this.
func Empty() Iterator {
	return &sliceIterator{}
}

// sliceIterator iterates over an in-memory posting slice.
type sliceIterator struct {
	postings []Posting
	pos      int
}

func (it *sliceIterator) Valid() bool {
	return it.pos < len(it.postings)
}

func (it *sliceIterator) Current() Posting {
	return it.postings[it.pos]
}

func (it *sliceIterator) Advance() {
	it.pos++
}

// Collect drains it and returns the remaining postings as a slice.
func Collect(it Iterator) []Posting {
	var out []Posting
	for ; it.Valid(); it.Advance() {
		out = append(out, it.Current())
	}
	return out
}
