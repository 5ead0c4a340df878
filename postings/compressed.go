package postings

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block codec for a CompressedList.
type Compression uint8

const (
	// CompressionNone stores the varint-delta stream as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 applies LZ4 block compression (fast, good for hot lists).
	CompressionLZ4 Compression = 1
	// CompressionZSTD applies ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return "Unknown"
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the data is stored uncompressed.
const blockHeaderSize = 8

// compressBlock compresses a block using the selected codec. Blocks
// that do not shrink meaningfully (ratio > 0.9) are stored raw.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var compressed []byte

	switch c {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, errors.New("unknown compression type")
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, c Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, errors.New("block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < blockHeaderSize+uncompressedSize {
			return nil, errors.New("block data too small")
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)) < blockHeaderSize+compressedSize {
		return nil, errors.New("compressed block data too small")
	}
	payload := data[blockHeaderSize : blockHeaderSize+compressedSize]

	switch c {
	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil
	default:
		return nil, errors.New("unknown compression type")
	}
}

// CompressedList is a List whose postings are stored as a varint stream
// of (document-id delta, term frequency) pairs, optionally wrapped in an
// LZ4 or ZSTD block after Freeze. Iteration decodes lazily: the block is
// expanded once, on the first iterator, and varints are read per step.
// Output is identical to a MemoryList holding the same postings.
type CompressedList struct {
	compression Compression

	raw    []byte // varint stream; nil once block is built
	block  []byte
	count  int
	lastID DocumentID
	frozen bool

	decodeOnce sync.Once
	decoded    []byte
	decodeErr  error
}

// NewCompressedList creates an empty posting list using the given block
// codec. CompressionNone keeps the varint stream unwrapped.
func NewCompressedList(c Compression) *CompressedList {
	return &CompressedList{compression: c}
}

var _ List = (*CompressedList)(nil)

func (l *CompressedList) Append(p Posting) error {
	if l.frozen {
		return ErrFrozen
	}
	if l.count > 0 && p.DocumentID <= l.lastID {
		return &ErrOutOfOrder{Last: l.lastID, Got: p.DocumentID}
	}
	l.raw = binary.AppendUvarint(l.raw, uint64(p.DocumentID-l.lastID))
	l.raw = binary.AppendUvarint(l.raw, uint64(p.TermFrequency))
	l.lastID = p.DocumentID
	l.count++
	return nil
}

func (l *CompressedList) Freeze() error {
	if l.frozen {
		return nil
	}
	l.frozen = true
	if l.compression == CompressionNone || len(l.raw) == 0 {
		return nil
	}
	block, err := compressBlock(l.raw, l.compression)
	if err != nil {
		return err
	}
	l.block = block
	l.raw = nil
	return nil
}

// stream returns the varint stream, expanding the compressed block on
// first use. Safe for concurrent iterators over a frozen list.
func (l *CompressedList) stream() ([]byte, error) {
	if l.block == nil {
		return l.raw, nil
	}
	l.decodeOnce.Do(func() {
		l.decoded, l.decodeErr = decompressBlock(l.block, l.compression)
	})
	return l.decoded, l.decodeErr
}

func (l *CompressedList) Iterator() Iterator {
	data, err := l.stream()
	if err != nil {
		// A corrupt block can only arise from memory corruption; the
		// list was encoded by this process.
		panic("postings: corrupt compressed block: " + err.Error())
	}
	it := &compressedIterator{data: data, remaining: l.count}
	it.Advance()
	return it
}

func (l *CompressedList) Len() int {
	return l.count
}

// compressedIterator streams (delta, frequency) uvarint pairs.
type compressedIterator struct {
	data      []byte
	pos       int
	remaining int
	current   Posting
	valid     bool
}

func (it *compressedIterator) Valid() bool {
	return it.valid
}

func (it *compressedIterator) Current() Posting {
	return it.current
}

func (it *compressedIterator) Advance() {
	if it.remaining == 0 {
		it.valid = false
		return
	}
	delta, n := binary.Uvarint(it.data[it.pos:])
	it.pos += n
	tf, n := binary.Uvarint(it.data[it.pos:])
	it.pos += n
	it.current = Posting{
		DocumentID:    it.current.DocumentID + DocumentID(delta),
		TermFrequency: int(tf),
	}
	it.remaining--
	it.valid = true
}
