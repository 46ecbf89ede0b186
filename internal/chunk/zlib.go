package chunk

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec is the default deflate-family chunk codec: the real on-disk
// compression used by the game's own save format. Writers are pooled the
// way arloliu-mebo pools its zstd encoder/decoder, since a save can contain
// thousands of chunks.
type ZlibCodec struct {
	writerPool sync.Pool
}

// NewZlibCodec returns a ready-to-use ZlibCodec.
func NewZlibCodec() *ZlibCodec {
	return &ZlibCodec{
		writerPool: sync.Pool{
			New: func() any {
				return zlib.NewWriter(io.Discard)
			},
		},
	}
}

// Algorithm reports AlgorithmZlib.
func (c *ZlibCodec) Algorithm() Algorithm { return AlgorithmZlib }

// Compress deflates uncompressed with a pooled zlib.Writer.
func (c *ZlibCodec) Compress(uncompressed []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := c.writerPool.Get().(*zlib.Writer)
	defer c.writerPool.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(uncompressed); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates compressed, which must expand to exactly
// uncompressedSize bytes.
func (c *ZlibCodec) Decompress(compressed []byte, uncompressedSize int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, err
	}
	return out, nil
}
