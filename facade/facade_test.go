package facade

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/chunk"
	"github.com/Sleavely/satisfactory-file-parser/internal/object"
	"github.com/Sleavely/satisfactory-file-parser/internal/save"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

func minimalSave() save.Save {
	return save.Save{
		Header: save.Header{
			SaveHeaderType: 13,
			SaveVersion:    41,
			BuildVersion:   200000,
			MapName:        "Persistent_Level",
			SessionName:    "Facade Save",
			SaveIdentifier: "00000000-0000-0000-0000-000000000000",
		},
		Compression: chunk.CompressionInfo{Algorithm: chunk.AlgorithmZlib, MaxChunkSize: 131072},
		Grids:       save.Grids{Cells: []save.GridCell{}},
		Levels: []save.Level{
			{Name: "Persistent_Level", Objects: []object.SceneObject{}, Collectables: []types.ObjectReference{}},
		},
	}
}

func TestParseWriteSaveRoundTrip(t *testing.T) {
	s := minimalSave()

	var progressCalls []float64
	var chunkCount int

	encoded, summaries, err := WriteSave(s, WriteOptions{
		OnChunk: func(b []byte) { chunkCount++ },
	})
	require.NoError(t, err)
	require.NotEmpty(t, summaries)
	require.Positive(t, chunkCount)

	decoded, err := ParseSave("save.sav", encoded, ParseOptions{
		OnProgress: func(p float64, msg string) { progressCalls = append(progressCalls, p) },
	})
	require.NoError(t, err)
	require.NotEmpty(t, progressCalls)
	require.Equal(t, s.Header, decoded.Header)
	require.Equal(t, decoded.Levels[0].Name, s.Levels[0].Name)
	require.Equal(t, decoded.Levels[0].Objects, s.Levels[0].Objects)
	require.Equal(t, decoded.Levels[0].Collectables, s.Levels[0].Collectables)

	reEncoded, _, err := WriteSave(decoded, WriteOptions{})
	require.NoError(t, err)
	require.Equal(t, encoded, reEncoded)
}

func TestParseSaveMinimalSaveHasNoWarnings(t *testing.T) {
	s := minimalSave()
	encoded, _, err := WriteSave(s, WriteOptions{})
	require.NoError(t, err)

	var warnings []string
	_, err = ParseSave("save.sav", encoded, ParseOptions{
		Warn: func(msg string) { warnings = append(warnings, msg) },
	})
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestParseWriteBlueprintRoundTrip(t *testing.T) {
	bp := save.Blueprint{
		Header: save.Header{
			SaveHeaderType: 13,
			SaveVersion:    41,
			BuildVersion:   200000,
			MapName:        "Persistent_Level",
			SessionName:    "Facade Blueprint",
			SaveIdentifier: "00000000-0000-0000-0000-000000000000",
		},
		Compression: chunk.CompressionInfo{Algorithm: chunk.AlgorithmZlib, MaxChunkSize: 131072},
		Objects:     []object.SceneObject{},
		Config:      []byte{0xAA, 0xBB},
	}

	mainBytes, _, configBytes, err := WriteBlueprint(bp, WriteOptions{})
	require.NoError(t, err)

	decoded, err := ParseBlueprint("bp", mainBytes, configBytes, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, bp.Header, decoded.Header)
	require.Equal(t, bp.Config, decoded.Config)

	reMain, _, reConfig, err := WriteBlueprint(decoded, WriteOptions{})
	require.NoError(t, err)
	require.Equal(t, mainBytes, reMain)
	require.Equal(t, configBytes, reConfig)
}

func TestParseSaveDefaultRegistryAcceptsNoneAlgorithm(t *testing.T) {
	s := minimalSave()
	s.Compression.Algorithm = chunk.AlgorithmNone

	encoded, _, err := WriteSave(s, WriteOptions{})
	require.NoError(t, err)

	decoded, err := ParseSave("save.sav", encoded, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, chunk.AlgorithmNone, decoded.Compression.Algorithm)
}
