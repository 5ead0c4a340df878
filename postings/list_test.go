package postings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryList_AppendAndIterate(t *testing.T) {
	l := NewMemoryList()

	want := []Posting{
		{DocumentID: 1, TermFrequency: 2},
		{DocumentID: 5, TermFrequency: 1},
		{DocumentID: 9, TermFrequency: 7},
	}
	for _, p := range want {
		require.NoError(t, l.Append(p))
	}
	require.NoError(t, l.Freeze())

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, want, Collect(l.Iterator()))
}

func TestMemoryList_RejectsOutOfOrder(t *testing.T) {
	l := NewMemoryList()
	require.NoError(t, l.Append(Posting{DocumentID: 10, TermFrequency: 1}))

	var oo *ErrOutOfOrder

	err := l.Append(Posting{DocumentID: 10, TermFrequency: 1})
	require.ErrorAs(t, err, &oo)
	assert.Equal(t, DocumentID(10), oo.Got)

	err = l.Append(Posting{DocumentID: 3, TermFrequency: 1})
	require.ErrorAs(t, err, &oo)
}

func TestMemoryList_AppendAfterFreeze(t *testing.T) {
	l := NewMemoryList()
	require.NoError(t, l.Freeze())

	err := l.Append(Posting{DocumentID: 1, TermFrequency: 1})
	assert.True(t, errors.Is(err, ErrFrozen))
}

func TestMemoryList_IndependentIterators(t *testing.T) {
	l := NewMemoryList()
	for i := 1; i <= 4; i++ {
		require.NoError(t, l.Append(Posting{DocumentID: DocumentID(i), TermFrequency: i}))
	}

	a := l.Iterator()
	b := l.Iterator()

	a.Advance()
	a.Advance()

	require.True(t, b.Valid())
	assert.Equal(t, DocumentID(1), b.Current().DocumentID)
	assert.Equal(t, DocumentID(3), a.Current().DocumentID)
}

func samplePostings(n int) []Posting {
	postings := make([]Posting, n)
	id := DocumentID(0)
	for i := range postings {
		id += DocumentID(1 + i%37) // uneven gaps
		postings[i] = Posting{DocumentID: id, TermFrequency: 1 + i%9}
	}
	return postings
}

func TestCompressedList_MatchesMemoryList(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			want := samplePostings(500)

			plain := NewMemoryList()
			compressed := NewCompressedList(c)
			for _, p := range want {
				require.NoError(t, plain.Append(p))
				require.NoError(t, compressed.Append(p))
			}
			require.NoError(t, plain.Freeze())
			require.NoError(t, compressed.Freeze())

			assert.Equal(t, plain.Len(), compressed.Len())
			assert.Equal(t, Collect(plain.Iterator()), Collect(compressed.Iterator()))
		})
	}
}

func TestCompressedList_IndependentIterators(t *testing.T) {
	l := NewCompressedList(CompressionZSTD)
	for _, p := range samplePostings(100) {
		require.NoError(t, l.Append(p))
	}
	require.NoError(t, l.Freeze())

	a := l.Iterator()
	b := l.Iterator()
	a.Advance()
	a.Advance()

	full := Collect(l.Iterator())
	assert.Equal(t, full, Collect(b)) // b is unaffected by a's advances
	assert.Equal(t, full[2:], Collect(a))
}

func TestCompressedList_Empty(t *testing.T) {
	l := NewCompressedList(CompressionLZ4)
	require.NoError(t, l.Freeze())

	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Iterator().Valid())
}

func TestCompressedList_AppendAfterFreeze(t *testing.T) {
	l := NewCompressedList(CompressionNone)
	require.NoError(t, l.Freeze())

	err := l.Append(Posting{DocumentID: 1, TermFrequency: 1})
	assert.True(t, errors.Is(err, ErrFrozen))
}

func TestCompressedList_RejectsOutOfOrder(t *testing.T) {
	l := NewCompressedList(CompressionNone)
	require.NoError(t, l.Append(Posting{DocumentID: 7, TermFrequency: 1}))

	var oo *ErrOutOfOrder
	require.ErrorAs(t, l.Append(Posting{DocumentID: 7, TermFrequency: 2}), &oo)
	assert.Equal(t, DocumentID(7), oo.Last)
}
