// Package types holds the on-disk schema's self-describing vocabulary: the
// struct-name registry the property codec dispatches on, and the rough
// version classifier used to reject saves the codec cannot round-trip.
package types

import "fmt"

// VersionClass buckets a save's declared version against the ranges this
// codec understands. Only VersionCurrent is accepted; the others reject
// with ErrUnsupportedVersion naming the last package version that could
// still read them.
type VersionClass uint8

const (
	VersionBelowU6 VersionClass = iota
	VersionU6U7
	VersionU8
	VersionCurrent
)

// Centralized thresholds. ClassifyVersion is the only place they are
// compared, so every version check agrees about where a version boundary
// falls.
const (
	thresholdU6U7  int32 = 29
	thresholdU8    int32 = 38
	thresholdCur   int32 = 41
	minHeaderTypeForCurrent int32 = 13
)

// downgradeVersion names, for each unsupported VersionClass, the last
// released package version able to read a save of that vintage.
var downgradeVersion = map[VersionClass]string{
	VersionBelowU6: "0.0.34",
	VersionU6U7:    "0.2.1",
	VersionU8:      "0.3.9",
}

// ErrUnsupportedVersion is returned when a save's version classifies below
// VersionCurrent.
type ErrUnsupportedVersion struct {
	SaveVersion        int32
	SaveHeaderType     int32
	Class              VersionClass
	RecommendedVersion string
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf(
		"unsupported save version %d (header type %d): use package version %s to load this save",
		e.SaveVersion, e.SaveHeaderType, e.RecommendedVersion,
	)
}

// ClassifyVersion buckets (saveVersion, saveHeaderType) into a VersionClass.
// Thresholds are fixed integer comparisons, centralized here; RequireCurrent
// classifies through this function. The save package applies that check on
// decode only: its Encode and EncodeBlueprint do not check the version.
func ClassifyVersion(saveVersion, saveHeaderType int32) VersionClass {
	switch {
	case saveVersion < thresholdU6U7:
		return VersionBelowU6
	case saveVersion < thresholdU8:
		return VersionU6U7
	case saveVersion < thresholdCur:
		return VersionU8
	case saveHeaderType < minHeaderTypeForCurrent:
		return VersionU8
	default:
		return VersionCurrent
	}
}

// RequireCurrent rejects any version that does not classify as
// VersionCurrent, with ErrUnsupportedVersion carrying the recommended
// downgrade package version.
func RequireCurrent(saveVersion, saveHeaderType int32) error {
	class := ClassifyVersion(saveVersion, saveHeaderType)
	if class == VersionCurrent {
		return nil
	}
	return ErrUnsupportedVersion{
		SaveVersion:        saveVersion,
		SaveHeaderType:     saveHeaderType,
		Class:              class,
		RecommendedVersion: downgradeVersion[class],
	}
}
