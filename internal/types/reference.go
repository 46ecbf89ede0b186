package types

import (
	"github.com/google/uuid"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

// ObjectReference is a by-value (level-name, path-name) pair identifying a
// scene object. It carries no pointer ownership; resolving it against the
// decoded object graph is left to consumers.
type ObjectReference struct {
	LevelName string
	PathName  string
}

// ReadObjectReference reads the two strings that make up an
// ObjectReference.
func ReadObjectReference(r *cursor.Reader) (ObjectReference, error) {
	var ref ObjectReference
	var err error
	if ref.LevelName, err = r.String(); err != nil {
		return ref, err
	}
	if ref.PathName, err = r.String(); err != nil {
		return ref, err
	}
	return ref, nil
}

// WriteObjectReference writes an ObjectReference's two strings.
func WriteObjectReference(w *cursor.Writer, ref ObjectReference) {
	w.WriteString(ref.LevelName)
	w.WriteString(ref.PathName)
}

// GUID is a raw 16-byte identifier with no textual form on disk. It is
// backed directly by uuid.UUID, which is itself a [16]byte, so it reads and
// writes off the cursor with no intermediate allocation or text parsing.
type GUID = uuid.UUID

// ReadGUID reads a raw GUID.
func ReadGUID(r *cursor.Reader) (GUID, error) {
	b, err := r.GUID()
	if err != nil {
		return GUID{}, err
	}
	var g GUID
	copy(g[:], b[:])
	return g, nil
}

// WriteGUID writes a raw GUID.
func WriteGUID(w *cursor.Writer, g GUID) {
	var b [16]byte
	copy(b[:], g[:])
	w.WriteGUID(b)
}

// GUIDInfo is the common one-byte-flag-plus-optional-GUID header prefix
// shared by most property values.
type GUIDInfo struct {
	Present bool
	Value   GUID
}

// ReadGUIDInfo reads a GUIDInfo: a flag byte, and if set, a 16-byte GUID.
func ReadGUIDInfo(r *cursor.Reader) (GUIDInfo, error) {
	var info GUIDInfo
	present, err := r.Uint8()
	if err != nil {
		return info, err
	}
	info.Present = present != 0
	if info.Present {
		if info.Value, err = ReadGUID(r); err != nil {
			return info, err
		}
	}
	return info, nil
}

// WriteGUIDInfo writes a GUIDInfo.
func WriteGUIDInfo(w *cursor.Writer, info GUIDInfo) {
	if info.Present {
		w.WriteUint8(1)
		WriteGUID(w, info.Value)
	} else {
		w.WriteUint8(0)
	}
}
