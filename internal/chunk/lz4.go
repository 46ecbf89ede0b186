package chunk

import (
	"encoding/binary"
	"fmt"

	lz4 "github.com/bkaradzic/go-lz4"
)

// LZ4Codec is the teacher format's legacy chunk codec, kept as an
// alternate Codec a caller can select via CompressionInfo.Algorithm. It is
// grounded directly on bin/model.go's rawChunk.ReadFrom/WriteTo, which
// prepends the uncompressed length ahead of the compressed payload the way
// go-lz4's Encode/Decode expect.
type LZ4Codec struct{}

// NewLZ4Codec returns a ready-to-use LZ4Codec.
func NewLZ4Codec() *LZ4Codec { return &LZ4Codec{} }

// Algorithm reports AlgorithmLZ4.
func (LZ4Codec) Algorithm() Algorithm { return AlgorithmLZ4 }

// Compress encodes uncompressed with go-lz4, stripping the length prefix
// go-lz4 writes ahead of the payload since the chunk header already carries
// the uncompressed size.
func (LZ4Codec) Compress(uncompressed []byte) ([]byte, error) {
	dst := make([]byte, 4)
	dst, err := lz4.Encode(dst, uncompressed)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return dst[4:], nil
}

// Decompress inflates compressed, which must expand to exactly
// uncompressedSize bytes. go-lz4 requires the uncompressed length ahead of
// the payload, so it is reconstructed from the chunk header here.
func (LZ4Codec) Decompress(compressed []byte, uncompressedSize int) ([]byte, error) {
	framed := make([]byte, 4+len(compressed))
	binary.LittleEndian.PutUint32(framed, uint32(uncompressedSize))
	copy(framed[4:], compressed)

	out := make([]byte, uncompressedSize)
	if _, err := lz4.Decode(out, framed); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return out, nil
}
