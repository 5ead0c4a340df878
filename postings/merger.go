package postings

// Set-algebra merges over two ascending, deduplicated posting streams.
// Each is a single linear pass, O(|a|+|b|), and yields an ascending,
// deduplicated stream. Empty inputs are fine.

// Intersect yields one posting per document id present in both streams.
// When ids match, the posting from a wins; b's term frequency is
// discarded. This policy is deliberate and pinned by tests.
func Intersect(a, b Iterator) Iterator {
	it := &intersectIterator{a: a, b: b}
	it.locate()
	return it
}

type intersectIterator struct {
	a, b    Iterator
	current Posting
	valid   bool
}

func (it *intersectIterator) Valid() bool      { return it.valid }
func (it *intersectIterator) Current() Posting { return it.current }

func (it *intersectIterator) Advance() {
	// Both cursors sit on the matched id.
	it.a.Advance()
	it.b.Advance()
	it.locate()
}

func (it *intersectIterator) locate() {
	for it.a.Valid() && it.b.Valid() {
		da, db := it.a.Current().DocumentID, it.b.Current().DocumentID
		switch {
		case da == db:
			it.current = it.a.Current()
			it.valid = true
			return
		case da < db:
			it.a.Advance()
		default:
			it.b.Advance()
		}
	}
	it.valid = false
}

// Union yields exactly one posting per document id present in either
// stream. When both contain an id, a's posting is yielded and both
// cursors advance past it.
func Union(a, b Iterator) Iterator {
	it := &unionIterator{a: a, b: b}
	it.locate()
	return it
}

type unionIterator struct {
	a, b         Iterator
	current      Posting
	valid        bool
	takeA, takeB bool
}

func (it *unionIterator) Valid() bool      { return it.valid }
func (it *unionIterator) Current() Posting { return it.current }

func (it *unionIterator) Advance() {
	if it.takeA {
		it.a.Advance()
	}
	if it.takeB {
		it.b.Advance()
	}
	it.locate()
}

func (it *unionIterator) locate() {
	it.takeA, it.takeB = false, false

	switch {
	case it.a.Valid() && it.b.Valid():
		da, db := it.a.Current().DocumentID, it.b.Current().DocumentID
		switch {
		case da == db:
			it.current = it.a.Current()
			it.takeA, it.takeB = true, true
		case da < db:
			it.current = it.a.Current()
			it.takeA = true
		default:
			it.current = it.b.Current()
			it.takeB = true
		}
		it.valid = true
	case it.a.Valid():
		it.current = it.a.Current()
		it.takeA = true
		it.valid = true
	case it.b.Valid():
		it.current = it.b.Current()
		it.takeB = true
		it.valid = true
	default:
		it.valid = false
	}
}

// Difference yields a's postings whose document id is absent from b.
// Ids present in both streams are skipped; a's tail drains once b is
// exhausted.
func Difference(a, b Iterator) Iterator {
	it := &differenceIterator{a: a, b: b}
	it.locate()
	return it
}

type differenceIterator struct {
	a, b    Iterator
	current Posting
	valid   bool
}

func (it *differenceIterator) Valid() bool      { return it.valid }
func (it *differenceIterator) Current() Posting { return it.current }

func (it *differenceIterator) Advance() {
	it.a.Advance()
	it.locate()
}

func (it *differenceIterator) locate() {
	for it.a.Valid() {
		if !it.b.Valid() {
			it.current = it.a.Current()
			it.valid = true
			return
		}
		da, db := it.a.Current().DocumentID, it.b.Current().DocumentID
		switch {
		case da < db:
			it.current = it.a.Current()
			it.valid = true
			return
		case da > db:
			it.b.Advance()
		default:
			it.a.Advance()
			it.b.Advance()
		}
	}
	it.valid = false
}
