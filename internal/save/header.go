// Package save implements top-level orchestration for both file families
// this codec speaks: full saves (header, partition grids, level list, body
// checksum) and blueprint pairs (a chunked main file with no grids/levels,
// plus a small uncompressed config file) — spec §4.7.
package save

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// Header is the fixed-shape preamble common to every save file, read before
// any chunk framing is touched.
type Header struct {
	SaveHeaderType    int32
	SaveVersion       int32
	BuildVersion      int32
	MapName           string
	MapOptions        string
	SessionName       string
	PlayDurationSec   int32
	SaveDateTicks     int64
	SessionVisibility uint8
	EditorObjectVersion int32
	ModMetadata       string
	IsModdedSave      bool
	SaveIdentifier    string
	IsPartitionedWorld bool
	SaveDataHash      [32]byte
	IsCreativeModeEnabled bool
}

// ReadHeader reads the uncompressed save header, before any chunk is
// touched. Its exact field set and order is version-dependent upstream;
// this codec reads the current shape and rejects anything older via
// RequireVersion.
func ReadHeader(r *cursor.Reader) (Header, error) {
	var h Header
	var err error

	if h.SaveHeaderType, err = r.Int32(); err != nil {
		return h, err
	}
	if h.SaveVersion, err = r.Int32(); err != nil {
		return h, err
	}
	if h.BuildVersion, err = r.Int32(); err != nil {
		return h, err
	}
	if h.MapName, err = r.String(); err != nil {
		return h, err
	}
	if h.MapOptions, err = r.String(); err != nil {
		return h, err
	}
	if h.SessionName, err = r.String(); err != nil {
		return h, err
	}
	if h.PlayDurationSec, err = r.Int32(); err != nil {
		return h, err
	}
	if h.SaveDateTicks, err = r.Int64(); err != nil {
		return h, err
	}
	if h.SessionVisibility, err = r.Uint8(); err != nil {
		return h, err
	}
	if h.EditorObjectVersion, err = r.Int32(); err != nil {
		return h, err
	}
	if h.ModMetadata, err = r.String(); err != nil {
		return h, err
	}
	moddedFlag, err := r.Int32()
	if err != nil {
		return h, err
	}
	h.IsModdedSave = moddedFlag != 0
	if h.SaveIdentifier, err = r.String(); err != nil {
		return h, err
	}
	partitionedFlag, err := r.Int32()
	if err != nil {
		return h, err
	}
	h.IsPartitionedWorld = partitionedFlag != 0
	hashBytes, err := r.Bytes(32)
	if err != nil {
		return h, err
	}
	copy(h.SaveDataHash[:], hashBytes)
	creativeFlag, err := r.Int32()
	if err != nil {
		return h, err
	}
	h.IsCreativeModeEnabled = creativeFlag != 0

	return h, nil
}

// WriteHeader writes the save header back out in the same field order
// ReadHeader consumed it.
func WriteHeader(w *cursor.Writer, h Header) {
	w.WriteInt32(h.SaveHeaderType)
	w.WriteInt32(h.SaveVersion)
	w.WriteInt32(h.BuildVersion)
	w.WriteString(h.MapName)
	w.WriteString(h.MapOptions)
	w.WriteString(h.SessionName)
	w.WriteInt32(h.PlayDurationSec)
	w.WriteInt64(h.SaveDateTicks)
	w.WriteUint8(h.SessionVisibility)
	w.WriteInt32(h.EditorObjectVersion)
	w.WriteString(h.ModMetadata)
	w.WriteInt32(boolToInt32(h.IsModdedSave))
	w.WriteString(h.SaveIdentifier)
	w.WriteInt32(boolToInt32(h.IsPartitionedWorld))
	w.WriteBytes(h.SaveDataHash[:])
	w.WriteInt32(boolToInt32(h.IsCreativeModeEnabled))
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// RequireVersion rejects headers whose version does not classify as
// current, per the centralized thresholds in the types package.
func RequireVersion(h Header) error {
	return types.RequireCurrent(h.SaveVersion, h.SaveHeaderType)
}
