package save

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/chunk"
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/object"
)

// Blueprint is the decoded pair of files a blueprint ships as: a chunked
// main file holding one object header/body pair with no grids, no levels,
// and no body hash, plus a small uncompressed config file.
type Blueprint struct {
	Header      Header
	Compression chunk.CompressionInfo
	Objects     []object.SceneObject
	Config      []byte
}

// ErrMalformedBlueprintConfig is returned when a config file's declared
// length prefix disagrees with the bytes actually present.
type ErrMalformedBlueprintConfig struct {
	Declared int
	Actual   int
}

func (e ErrMalformedBlueprintConfig) Error() string {
	return fmt.Sprintf("blueprint config: declared %d bytes, file holds %d", e.Declared, e.Actual)
}

// DecodeBlueprint parses a blueprint's main file and config file
// independently, per §4.7.
func DecodeBlueprint(mainBytes, configBytes []byte, registry chunk.Registry, opts DecodeOptions) (Blueprint, error) {
	var bp Blueprint

	headerEnd, header, err := peekHeader(mainBytes)
	if err != nil {
		return bp, err
	}
	bp.Header = header

	if opts.OnHeader != nil {
		opts.OnHeader(append([]byte(nil), mainBytes[:headerEnd]...))
	}

	if err := RequireVersion(bp.Header); err != nil {
		return bp, err
	}

	r := cursor.NewReader(mainBytes[headerEnd:])
	body, info, err := chunk.Decode(r, registry, opts.OnDecompressedChunk)
	if err != nil {
		return bp, err
	}
	bp.Compression = info

	if opts.OnDecompressedBody != nil {
		opts.OnDecompressedBody(body)
	}

	br := cursor.NewReader(body)
	headers, err := object.ReadHeaders(br)
	if err != nil {
		return bp, err
	}
	kinds := make([]object.Kind, len(headers))
	for i, h := range headers {
		kinds[i] = h.Kind
	}
	bodies, err := object.ReadBodies(br, kinds, opts.Warn)
	if err != nil {
		return bp, err
	}
	bp.Objects = make([]object.SceneObject, len(headers))
	for i := range bp.Objects {
		bp.Objects[i] = object.SceneObject{Header: headers[i], Body: bodies[i]}
	}

	bp.Config, err = decodeBlueprintConfig(configBytes)
	if err != nil {
		return bp, err
	}

	return bp, nil
}

// decodeBlueprintConfig strips the length prefix a config file carries and
// returns the raw metadata blob it frames.
func decodeBlueprintConfig(raw []byte) ([]byte, error) {
	r := cursor.NewReader(raw)
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if int(n) != r.Len() {
		return nil, ErrMalformedBlueprintConfig{Declared: int(n), Actual: r.Len()}
	}
	blob, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), blob...), nil
}

// EncodeBlueprint re-serializes a Blueprint's main file and config file
// independently, mirroring DecodeBlueprint.
func EncodeBlueprint(bp Blueprint, registry chunk.Registry, opts EncodeOptions) ([]byte, []chunk.Summary, []byte, error) {
	bw := cursor.NewWriter()
	headers := make([]object.Header, len(bp.Objects))
	kinds := make([]object.Kind, len(bp.Objects))
	bodies := make([]object.Body, len(bp.Objects))
	for i, o := range bp.Objects {
		headers[i] = o.Header
		kinds[i] = o.Header.Kind
		bodies[i] = o.Body
	}
	object.WriteHeaders(bw, headers)
	if err := object.WriteBodies(bw, kinds, bodies); err != nil {
		return nil, nil, nil, err
	}
	bodyBytes := bw.Bytes()

	if opts.OnBinaryBeforeCompressing != nil {
		opts.OnBinaryBeforeCompressing(bodyBytes)
	}

	hw := cursor.NewWriter()
	WriteHeader(hw, bp.Header)
	headerBytes := hw.Bytes()
	if opts.OnHeader != nil {
		opts.OnHeader(headerBytes)
	}

	summaries, chunked, err := chunk.Encode(bodyBytes, bp.Compression, registry, opts.OnChunk)
	if err != nil {
		return nil, nil, nil, err
	}

	main := make([]byte, 0, len(headerBytes)+len(chunked))
	main = append(main, headerBytes...)
	main = append(main, chunked...)

	config := cursor.NewWriter()
	config.WriteUint32(uint32(len(bp.Config)))
	config.WriteBytes(bp.Config)

	return main, summaries, config.Bytes(), nil
}
