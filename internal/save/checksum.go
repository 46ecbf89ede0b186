package save

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrChecksumMismatch is returned when the body hash stored in the first 32
// bytes of the chunk-inflated body disagrees with the hash of what follows it.
type ErrChecksumMismatch struct {
	Declared [32]byte
	Computed [32]byte
}

func (e ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("save: body checksum mismatch: declared %x, computed %x", e.Declared, e.Computed)
}

// bodyHash returns the blake2b-256 digest of b, this codec's choice of hash
// for the body-integrity check described in §4.7.
func bodyHash(b []byte) [32]byte {
	return blake2b.Sum256(b)
}

// VerifyChecksum compares declared against the digest of rest, returning
// ErrChecksumMismatch if they disagree.
func VerifyChecksum(declared [32]byte, rest []byte) error {
	computed := bodyHash(rest)
	if computed != declared {
		return ErrChecksumMismatch{Declared: declared, Computed: computed}
	}
	return nil
}
