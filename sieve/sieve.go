// Package sieve provides a fixed-capacity top-K accumulator for
// (score, id) pairs. It keeps the K highest-scored offers seen so far
// in O(K) memory, however many offers are made.
package sieve

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/hupe1980/lexgo/postings"
)

// Entry is one kept (score, id) pair.
type Entry struct {
	Score      float64
	DocumentID postings.DocumentID
}

// Sieve keeps the capacity highest-scored offers. Once full, an offer
// evicts the worst kept entry only when its score is strictly greater;
// on a tie the earlier-kept entry survives. Capacity zero is valid and
// keeps nothing.
type Sieve struct {
	capacity int
	items    entryHeap
	seq      int
}

// New creates a Sieve with the given capacity. Capacity must be >= 0;
// a negative capacity is a programming error and panics.
func New(capacity int) *Sieve {
	if capacity < 0 {
		panic(fmt.Sprintf("sieve: negative capacity %d", capacity))
	}
	return &Sieve{
		capacity: capacity,
		items:    make(entryHeap, 0, capacity),
	}
}

// Offer submits a (score, id) pair for consideration.
func (s *Sieve) Offer(score float64, id postings.DocumentID) {
	seq := s.seq
	s.seq++

	if s.capacity == 0 {
		return
	}
	if len(s.items) < s.capacity {
		heap.Push(&s.items, heapEntry{Entry: Entry{Score: score, DocumentID: id}, seq: seq})
		return
	}
	if score > s.items[0].Score {
		s.items[0] = heapEntry{Entry: Entry{Score: score, DocumentID: id}, seq: seq}
		heap.Fix(&s.items, 0)
	}
}

// Len returns the number of kept entries.
func (s *Sieve) Len() int {
	return len(s.items)
}

// Winners returns the kept entries sorted by descending score, ties
// broken by original offer order. The Sieve is left unchanged.
func (s *Sieve) Winners() []Entry {
	sorted := make([]heapEntry, len(s.items))
	copy(sorted, s.items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].seq < sorted[j].seq
	})

	winners := make([]Entry, len(sorted))
	for i, e := range sorted {
		winners[i] = e.Entry
	}
	return winners
}

type heapEntry struct {
	Entry
	seq int
}

// entryHeap is a min-heap whose root is the eviction candidate: the
// lowest score, and among equal scores the latest arrival.
type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].seq > h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
