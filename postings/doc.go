// Package postings provides posting lists and set-algebra merges for an
// inverted index.
//
// A posting list is an ascending, deduplicated-by-document-id sequence
// of (document id, term frequency) pairs for one term. Lists are built
// by repeated Append during indexing and frozen before querying. Two
// backings share the same iteration contract: MemoryList (plain slice)
// and CompressedList (varint-delta stream, optionally LZ4/ZSTD block
// compressed).
//
// Intersect, Union and Difference merge two posting streams in one
// linear pass each.
package postings
