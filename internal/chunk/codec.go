// Package chunk frames the compressed body of a save or blueprint main
// file: a sequence of self-describing chunks, each carrying its own
// compressed/uncompressed sizes, that concatenate back into one contiguous
// body.
package chunk

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

// PackageFileTag is the 8-byte sentinel that opens every chunk header.
var PackageFileTag = [8]byte{0xC1, 0x83, 0x2A, 0x9E, 0x00, 0x00, 0x00, 0x00}

// PackageFileVersion is the chunk-header version this codec writes, and the
// only one it accepts on decode.
const PackageFileVersion int32 = 0x83

// Algorithm identifies the deflate-family codec a chunk's payload was
// compressed with.
type Algorithm uint8

const (
	// AlgorithmZlib is the default, real on-disk compression: a pooled
	// klauspost/compress/zlib stream.
	AlgorithmZlib Algorithm = 0
	// AlgorithmNone marks an uncompressed chunk (compressed size equals
	// uncompressed size, payload copied verbatim).
	AlgorithmNone Algorithm = 1
	// AlgorithmLZ4 is the teacher format's legacy chunk codec, kept as an
	// alternate Codec implementation.
	AlgorithmLZ4 Algorithm = 2
	// AlgorithmZstdReserved is a forward-compatibility placeholder; no
	// encoder exists for it and decode rejects it explicitly.
	AlgorithmZstdReserved Algorithm = 3
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmZlib:
		return "zlib"
	case AlgorithmNone:
		return "none"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmZstdReserved:
		return "zstd"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// CompressionInfo is captured from the first chunk decoded and required
// again at encode time; every subsequent chunk must agree with it.
type CompressionInfo struct {
	Algorithm    Algorithm
	MaxChunkSize int32
	Flags        uint8
}

// Codec compresses and decompresses one chunk payload at a time.
type Codec interface {
	Algorithm() Algorithm
	Compress(uncompressed []byte) ([]byte, error)
	Decompress(compressed []byte, uncompressedSize int) ([]byte, error)
}

// Registry resolves an Algorithm to the Codec that implements it.
type Registry map[Algorithm]Codec

// DefaultRegistry wires every Codec this module ships with.
func DefaultRegistry() Registry {
	return Registry{
		AlgorithmZlib: NewZlibCodec(),
		AlgorithmNone: noopCodec{},
		AlgorithmLZ4:  NewLZ4Codec(),
	}
}

type noopCodec struct{}

func (noopCodec) Algorithm() Algorithm { return AlgorithmNone }
func (noopCodec) Compress(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
func (noopCodec) Decompress(b []byte, n int) ([]byte, error) {
	if len(b) != n {
		return nil, fmt.Errorf("chunk: uncompressed copy length mismatch: header says %d, got %d", n, len(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ErrMalformedChunkHeader is returned when a chunk header's sentinel or
// version does not match what this codec produces.
type ErrMalformedChunkHeader struct {
	Position int
	Reason   string
}

func (e ErrMalformedChunkHeader) Error() string {
	return fmt.Sprintf("malformed chunk header at offset %d: %s", e.Position, e.Reason)
}

// ErrChunkSizeMismatch is returned when an inflated chunk's length disagrees
// with its declared uncompressed size.
type ErrChunkSizeMismatch struct {
	Declared int
	Actual   int
}

func (e ErrChunkSizeMismatch) Error() string {
	return fmt.Sprintf("chunk inflated to %d bytes, header declared %d", e.Actual, e.Declared)
}

// ErrInconsistentCompressionInfo is returned when a later chunk's
// algorithm/max-size/flags disagree with the first chunk's.
type ErrInconsistentCompressionInfo struct {
	First CompressionInfo
	Later CompressionInfo
}

func (e ErrInconsistentCompressionInfo) Error() string {
	return fmt.Sprintf("chunk compression info changed mid-stream: first %+v, later %+v", e.First, e.Later)
}

type header struct {
	maxChunkSize      int32
	algorithm         Algorithm
	compressedSize1   int64
	uncompressedSize1 int64
	compressedSize2   int64
	uncompressedSize2 int64
	flags             uint8
}

func readHeader(r *cursor.Reader) (header, error) {
	var h header
	pos := r.Position()
	tag, err := r.Bytes(8)
	if err != nil {
		return h, err
	}
	var gotTag [8]byte
	copy(gotTag[:], tag)
	if gotTag != PackageFileTag {
		return h, ErrMalformedChunkHeader{Position: pos, Reason: "bad package file tag"}
	}
	version, err := r.Int32()
	if err != nil {
		return h, err
	}
	if version != PackageFileVersion {
		return h, ErrMalformedChunkHeader{Position: pos, Reason: fmt.Sprintf("unsupported package file version %d", version)}
	}
	if h.maxChunkSize, err = r.Int32(); err != nil {
		return h, err
	}
	alg, err := r.Uint8()
	if err != nil {
		return h, err
	}
	h.algorithm = Algorithm(alg)
	if h.compressedSize1, err = r.Int64(); err != nil {
		return h, err
	}
	if h.uncompressedSize1, err = r.Int64(); err != nil {
		return h, err
	}
	if h.compressedSize2, err = r.Int64(); err != nil {
		return h, err
	}
	if h.uncompressedSize2, err = r.Int64(); err != nil {
		return h, err
	}
	if h.flags, err = r.Uint8(); err != nil {
		return h, err
	}
	if h.compressedSize1 != h.compressedSize2 || h.uncompressedSize1 != h.uncompressedSize2 {
		return h, ErrMalformedChunkHeader{Position: pos, Reason: "duplicated size pair disagrees"}
	}
	return h, nil
}

func writeHeader(w *cursor.Writer, h header) {
	w.WriteBytes(PackageFileTag[:])
	w.WriteInt32(PackageFileVersion)
	w.WriteInt32(h.maxChunkSize)
	w.WriteUint8(uint8(h.algorithm))
	w.WriteInt64(h.compressedSize1)
	w.WriteInt64(h.uncompressedSize1)
	w.WriteInt64(h.compressedSize2)
	w.WriteInt64(h.uncompressedSize2)
	w.WriteUint8(h.flags)
}

// Summary describes one emitted chunk, for callers streaming the encoded
// output to disk.
type Summary struct {
	UncompressedSize int
	CompressedSize   int
	Offset           int64
}

// OnChunk is invoked once per emitted chunk during Encode, in emission
// order, with that chunk's header and payload bytes.
type OnChunk func(chunkBytes []byte)

// Decode reads chunks from r until it is exhausted, inflating each and
// appending to a contiguous body. It returns the body and the
// CompressionInfo recorded from the first chunk.
func Decode(r *cursor.Reader, registry Registry, onDecompressedChunk func([]byte)) ([]byte, CompressionInfo, error) {
	var body []byte
	var info CompressionInfo
	first := true

	for r.Len() > 0 {
		h, err := readHeader(r)
		if err != nil {
			return nil, info, err
		}

		thisInfo := CompressionInfo{Algorithm: h.algorithm, MaxChunkSize: h.maxChunkSize, Flags: h.flags}
		if first {
			info = thisInfo
			first = false
		} else if thisInfo != info {
			return nil, info, ErrInconsistentCompressionInfo{First: info, Later: thisInfo}
		}

		codec, ok := registry[h.algorithm]
		if !ok {
			return nil, info, fmt.Errorf("chunk: unsupported compression algorithm %s", h.algorithm)
		}

		compressed, err := r.Bytes(int(h.compressedSize1))
		if err != nil {
			return nil, info, err
		}

		inflated, err := codec.Decompress(compressed, int(h.uncompressedSize1))
		if err != nil {
			return nil, info, err
		}
		if len(inflated) != int(h.uncompressedSize1) {
			return nil, info, ErrChunkSizeMismatch{Declared: int(h.uncompressedSize1), Actual: len(inflated)}
		}

		if onDecompressedChunk != nil {
			onDecompressedChunk(inflated)
		}

		body = append(body, inflated...)
	}

	return body, info, nil
}

// Encode slices body into pieces bounded by info.MaxChunkSize, compresses
// each independently with the Codec for info.Algorithm, and writes a chunk
// header plus the compressed bytes for each piece. onChunk, if non-nil, is
// invoked once per emitted chunk in order with the raw chunk bytes (header
// + payload) for the caller to stream to disk.
func Encode(body []byte, info CompressionInfo, registry Registry, onChunk OnChunk) ([]Summary, []byte, error) {
	codec, ok := registry[info.Algorithm]
	if !ok {
		return nil, nil, fmt.Errorf("chunk: unsupported compression algorithm %s", info.Algorithm)
	}
	if info.MaxChunkSize <= 0 {
		return nil, nil, fmt.Errorf("chunk: max chunk size must be positive, got %d", info.MaxChunkSize)
	}

	var summaries []Summary
	out := cursor.NewWriter()
	var offset int64

	for off := 0; off < len(body) || (off == 0 && len(body) == 0); off += int(info.MaxChunkSize) {
		end := off + int(info.MaxChunkSize)
		if end > len(body) {
			end = len(body)
		}
		piece := body[off:end]

		compressed, err := codec.Compress(piece)
		if err != nil {
			return nil, nil, err
		}

		h := header{
			maxChunkSize:      info.MaxChunkSize,
			algorithm:         info.Algorithm,
			compressedSize1:   int64(len(compressed)),
			uncompressedSize1: int64(len(piece)),
			compressedSize2:   int64(len(compressed)),
			uncompressedSize2: int64(len(piece)),
			flags:             info.Flags,
		}

		chunkStart := out.Position()
		writeHeader(out, h)
		out.WriteBytes(compressed)

		if onChunk != nil {
			onChunk(out.Bytes()[chunkStart:])
		}

		summaries = append(summaries, Summary{
			UncompressedSize: len(piece),
			CompressedSize:   len(compressed),
			Offset:           offset,
		})
		offset += int64(len(piece))

		if end == len(body) {
			break
		}
	}

	return summaries, out.Bytes(), nil
}
