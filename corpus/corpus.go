// Package corpus defines the document collection consumed by the
// retrieval engine, plus a small in-memory implementation suitable for
// tests and modest collections.
package corpus

import (
	"fmt"

	"github.com/hupe1980/lexgo/postings"
)

// Document is one indexable item with named fields.
type Document interface {
	// DocumentID returns the document's identifier within its corpus.
	DocumentID() postings.DocumentID

	// Field returns the named field's text, or fallback if the field
	// is absent or not textual. Absent fields are expected, not errors.
	Field(name, fallback string) string

	// FloatField returns the named field's numeric value, or fallback
	// if the field is absent or not numeric.
	FloatField(name string, fallback float64) float64
}

// Corpus is a fixed collection of documents.
type Corpus interface {
	// Size returns the number of documents.
	Size() int

	// Document returns the document with the given id.
	Document(id postings.DocumentID) (Document, bool)

	// Documents returns the documents in ascending id order.
	Documents() []Document
}

// InMemoryDocument is a map-backed Document.
type InMemoryDocument struct {
	id     postings.DocumentID
	fields map[string]any
}

// NewInMemoryDocument creates a document with the given id and fields.
func NewInMemoryDocument(id postings.DocumentID, fields map[string]any) *InMemoryDocument {
	if fields == nil {
		fields = map[string]any{}
	}
	return &InMemoryDocument{id: id, fields: fields}
}

var _ Document = (*InMemoryDocument)(nil)

func (d *InMemoryDocument) DocumentID() postings.DocumentID {
	return d.id
}

func (d *InMemoryDocument) Field(name, fallback string) string {
	if v, ok := d.fields[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

func (d *InMemoryDocument) FloatField(name string, fallback float64) float64 {
	switch v := d.fields[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return fallback
	}
}

// String returns a string representation of the document.
func (d *InMemoryDocument) String() string {
	return fmt.Sprintf("Document(%d, %v)", d.id, d.fields)
}

// InMemoryCorpus is a slice-backed Corpus with ascending document ids.
type InMemoryCorpus struct {
	docs []Document
	byID map[postings.DocumentID]Document
}

// NewInMemoryCorpus creates an empty corpus.
func NewInMemoryCorpus() *InMemoryCorpus {
	return &InMemoryCorpus{byID: make(map[postings.DocumentID]Document)}
}

var _ Corpus = (*InMemoryCorpus)(nil)

// Add appends a document. Document ids must be unique.
func (c *InMemoryCorpus) Add(doc Document) error {
	if _, ok := c.byID[doc.DocumentID()]; ok {
		return fmt.Errorf("corpus: duplicate document id %d", doc.DocumentID())
	}
	c.docs = append(c.docs, doc)
	c.byID[doc.DocumentID()] = doc
	return nil
}

// AddFields appends a document built from the given fields, assigning
// the next sequential document id. Returns the new document.
func (c *InMemoryCorpus) AddFields(fields map[string]any) *InMemoryDocument {
	doc := NewInMemoryDocument(postings.DocumentID(len(c.docs)), fields)
	c.docs = append(c.docs, doc)
	c.byID[doc.DocumentID()] = doc
	return doc
}

func (c *InMemoryCorpus) Size() int {
	return len(c.docs)
}

func (c *InMemoryCorpus) Document(id postings.DocumentID) (Document, bool) {
	doc, ok := c.byID[id]
	return doc, ok
}

func (c *InMemoryCorpus) Documents() []Document {
	return c.docs
}
