package save

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/chunk"
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

// Save is the fully decoded in-memory object graph for one save file: the
// header, the chunk compression parameters it was read with, the partition
// grid forest, and the level list (whose last entry is the persistent
// level).
type Save struct {
	Header      Header
	Compression chunk.CompressionInfo
	Grids       Grids
	Levels      []Level
}

// DecodeOptions carries the synchronous callbacks a caller may want fired
// during decode; every field is optional.
type DecodeOptions struct {
	OnProgress            func(p float64, msg string)
	OnDecompressedBody    func([]byte)
	OnHeader              func([]byte)
	OnDecompressedChunk   func([]byte)
	Warn                  func(string)
}

// Decode parses a full save file: the uncompressed header, then the
// chunk-framed body (checksum, grids, level list).
func Decode(raw []byte, registry chunk.Registry, opts DecodeOptions) (Save, error) {
	var s Save

	headerEnd, header, err := peekHeader(raw)
	if err != nil {
		return s, err
	}
	s.Header = header

	if opts.OnHeader != nil {
		opts.OnHeader(append([]byte(nil), raw[:headerEnd]...))
	}
	if opts.OnProgress != nil {
		opts.OnProgress(0.1, "header parsed")
	}

	if err := RequireVersion(s.Header); err != nil {
		return s, err
	}

	r := cursor.NewReader(raw[headerEnd:])
	body, info, err := chunk.Decode(r, registry, opts.OnDecompressedChunk)
	if err != nil {
		return s, err
	}
	s.Compression = info

	if opts.OnDecompressedBody != nil {
		opts.OnDecompressedBody(body)
	}
	if opts.OnProgress != nil {
		opts.OnProgress(0.4, "body inflated")
	}

	br := cursor.NewReader(body)

	declaredHash, err := br.Bytes(32)
	if err != nil {
		return s, err
	}
	var declared [32]byte
	copy(declared[:], declaredHash)

	if err := VerifyChecksum(declared, body[32:]); err != nil {
		return s, err
	}

	if s.Grids, err = ReadGrids(br); err != nil {
		return s, err
	}
	if opts.OnProgress != nil {
		opts.OnProgress(0.6, "grids parsed")
	}

	if s.Levels, err = ReadLevelList(br, s.Header.MapName, opts.Warn); err != nil {
		return s, err
	}
	if opts.OnProgress != nil {
		opts.OnProgress(1.0, "levels parsed")
	}

	return s, nil
}

// peekHeader reads just the fixed save header from the start of raw and
// returns the byte offset immediately after it.
func peekHeader(raw []byte) (int, Header, error) {
	r := cursor.NewReader(raw)
	h, err := ReadHeader(r)
	if err != nil {
		return 0, h, err
	}
	return r.Position(), h, nil
}

// EncodeOptions carries the synchronous callbacks a caller may want fired
// during encode; every field is optional.
type EncodeOptions struct {
	OnBinaryBeforeCompressing func([]byte)
	OnHeader                  func([]byte)
	OnChunk                   chunk.OnChunk
}

// Encode re-serializes a Save back to bytes: the uncompressed header,
// followed by the chunk-framed body (checksum, grids, level list).
func Encode(s Save, registry chunk.Registry, opts EncodeOptions) ([]byte, []chunk.Summary, error) {
	bw := cursor.NewWriter()
	WriteGrids(bw, s.Grids)
	if err := WriteLevelList(bw, s.Levels); err != nil {
		return nil, nil, err
	}

	rest := bw.Bytes()
	hash := bodyHash(rest)

	body := cursor.NewWriter()
	body.WriteBytes(hash[:])
	body.WriteBytes(rest)
	bodyBytes := body.Bytes()

	if opts.OnBinaryBeforeCompressing != nil {
		opts.OnBinaryBeforeCompressing(bodyBytes)
	}

	hw := cursor.NewWriter()
	WriteHeader(hw, s.Header)
	headerBytes := hw.Bytes()
	if opts.OnHeader != nil {
		opts.OnHeader(headerBytes)
	}

	summaries, chunked, err := chunk.Encode(bodyBytes, s.Compression, registry, opts.OnChunk)
	if err != nil {
		return nil, nil, err
	}

	out := make([]byte, 0, len(headerBytes)+len(chunked))
	out = append(out, headerBytes...)
	out = append(out, chunked...)

	return out, summaries, nil
}
