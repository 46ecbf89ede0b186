package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

func TestEncodeDecodeRoundTripZlib(t *testing.T) {
	registry := DefaultRegistry()
	body := make([]byte, 0, 300000)
	for i := 0; i < 300000; i++ {
		body = append(body, byte(i%251))
	}
	info := CompressionInfo{Algorithm: AlgorithmZlib, MaxChunkSize: 131072}

	var chunkCount int
	summaries, encoded, err := Encode(body, info, registry, func(b []byte) { chunkCount++ })
	require.NoError(t, err)
	require.NotEmpty(t, summaries)
	require.Greater(t, chunkCount, 1)

	var sum int
	for _, s := range summaries {
		sum += s.UncompressedSize
	}
	require.Equal(t, len(body), sum)

	decoded, decodedInfo, err := Decode(cursor.NewReader(encoded), registry, nil)
	require.NoError(t, err)
	require.Equal(t, body, decoded)
	require.Equal(t, info, decodedInfo)
}

func TestEncodeDecodeRoundTripEmptyBody(t *testing.T) {
	registry := DefaultRegistry()
	info := CompressionInfo{Algorithm: AlgorithmNone, MaxChunkSize: 1024}

	_, encoded, err := Encode(nil, info, registry, nil)
	require.NoError(t, err)

	decoded, _, err := Decode(cursor.NewReader(encoded), registry, nil)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecodeRejectsBadTag(t *testing.T) {
	registry := DefaultRegistry()
	buf := make([]byte, 8)
	r := cursor.NewReader(buf)
	_, _, err := Decode(r, registry, nil)
	require.Error(t, err)
	var target ErrMalformedChunkHeader
	require.ErrorAs(t, err, &target)
}

func TestDecodeRejectsInconsistentCompressionInfo(t *testing.T) {
	registry := DefaultRegistry()
	info1 := CompressionInfo{Algorithm: AlgorithmNone, MaxChunkSize: 16}
	_, chunk1, err := Encode([]byte("0123456789abcdef"), info1, registry, nil)
	require.NoError(t, err)

	info2 := CompressionInfo{Algorithm: AlgorithmNone, MaxChunkSize: 8}
	_, chunk2, err := Encode([]byte("xyz"), info2, registry, nil)
	require.NoError(t, err)

	combined := append(chunk1, chunk2...)
	_, _, err = Decode(cursor.NewReader(combined), registry, nil)
	require.Error(t, err)
	var target ErrInconsistentCompressionInfo
	require.ErrorAs(t, err, &target)
}

func TestChunkInvariantSumsToBodyLength(t *testing.T) {
	registry := DefaultRegistry()
	body := []byte("the quick brown fox jumps over the lazy dog, repeatedly, to pad this out")
	info := CompressionInfo{Algorithm: AlgorithmZlib, MaxChunkSize: 16}

	summaries, _, err := Encode(body, info, registry, nil)
	require.NoError(t, err)

	var total int
	for _, s := range summaries {
		total += s.UncompressedSize
	}
	require.Equal(t, len(body), total)
}
