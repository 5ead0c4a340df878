// Package index provides an in-memory inverted index: a term
// dictionary plus one posting list per term, built once over a fixed
// document collection and immutable afterwards.
package index

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hupe1980/lexgo/analysis"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/postings"
)

// Index is the lookup surface the retrieval engine depends on.
type Index interface {
	// Terms runs the buffer through the identical canonicalize,
	// segment, normalize pipeline used at build time and returns the
	// resulting term multiset in order of appearance.
	Terms(buffer string) []string

	// Postings returns a fresh ascending cursor over the term's
	// posting list. Unknown terms yield an empty cursor, not an error.
	Postings(term string) postings.Iterator

	// DocumentFrequency returns the number of documents containing the
	// term, 0 for unknown terms.
	DocumentFrequency(term string) int
}

type options struct {
	newList func() postings.List
	logger  *slog.Logger
}

// Option configures index construction.
type Option func(*options)

// WithCompressedLists stores posting lists varint-delta encoded,
// optionally block-compressed with the given codec. The iteration
// contract is unchanged; only the backing representation differs.
func WithCompressedLists(c postings.Compression) Option {
	return func(o *options) {
		o.newList = func() postings.List { return postings.NewCompressedList(c) }
	}
}

// WithLogger configures structured build logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// MemoryIndex is an in-memory Index implementation. Safe for
// concurrent read-only use once built.
type MemoryIndex struct {
	normalizer analysis.Normalizer
	tokenizer  analysis.Tokenizer
	termIDs    map[string]int
	lists      []postings.List
}

var _ Index = (*MemoryIndex)(nil)

// New builds an inverted index over the given corpus and fields: per
// document, the configured fields are concatenated (missing fields are
// treated as empty), canonicalized, segmented and normalized, and one
// posting carrying the in-document term count is appended per distinct
// term. Term ids are assigned on first sight and never reused. The
// same normalizer and tokenizer must later serve query processing.
func New(c corpus.Corpus, fields []string, normalizer analysis.Normalizer, tokenizer analysis.Tokenizer, optFns ...Option) (*MemoryIndex, error) {
	opts := options{
		newList: func() postings.List { return postings.NewMemoryList() },
		logger:  slog.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	idx := &MemoryIndex{
		normalizer: normalizer,
		tokenizer:  tokenizer,
		termIDs:    make(map[string]int),
	}

	// Posting lists are append-only in ascending document-id order, so
	// documents are visited sorted by id.
	docs := make([]corpus.Document, len(c.Documents()))
	copy(docs, c.Documents())
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].DocumentID() < docs[j].DocumentID()
	})

	for _, doc := range docs {
		counts, order := idx.termCounts(doc, fields)
		for _, term := range order {
			termID, ok := idx.termIDs[term]
			if !ok {
				termID = len(idx.lists)
				idx.termIDs[term] = termID
				idx.lists = append(idx.lists, opts.newList())
			}
			p := postings.Posting{DocumentID: doc.DocumentID(), TermFrequency: counts[term]}
			if err := idx.lists[termID].Append(p); err != nil {
				return nil, fmt.Errorf("index: document %d, term %q: %w", doc.DocumentID(), term, err)
			}
		}
	}

	for _, list := range idx.lists {
		if err := list.Freeze(); err != nil {
			return nil, fmt.Errorf("index: freeze: %w", err)
		}
	}

	opts.logger.Info("index built",
		"documents", len(docs),
		"fields", strings.Join(fields, ","),
		"terms", len(idx.lists),
	)

	return idx, nil
}

// termCounts returns the per-term occurrence counts for one document,
// plus the distinct terms in first-occurrence order.
func (idx *MemoryIndex) termCounts(doc corpus.Document, fields []string) (map[string]int, []string) {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, doc.Field(field, ""))
	}
	buffer := strings.Join(parts, " ")

	counts := make(map[string]int)
	var order []string
	for _, term := range idx.Terms(buffer) {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}
	return counts, order
}

func (idx *MemoryIndex) Terms(buffer string) []string {
	tokens := idx.tokenizer.Segment(idx.normalizer.Canonicalize(buffer))
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		terms = append(terms, idx.normalizer.Normalize(token))
	}
	return terms
}

func (idx *MemoryIndex) Postings(term string) postings.Iterator {
	termID, ok := idx.termIDs[term]
	if !ok {
		return postings.Empty()
	}
	return idx.lists[termID].Iterator()
}

func (idx *MemoryIndex) DocumentFrequency(term string) int {
	termID, ok := idx.termIDs[term]
	if !ok {
		return 0
	}
	return idx.lists[termID].Len()
}

// VocabularySize returns the number of distinct indexed terms.
func (idx *MemoryIndex) VocabularySize() int {
	return len(idx.lists)
}
