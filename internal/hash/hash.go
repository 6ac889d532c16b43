// Package hash provides shared hashing utilities for fingerprinting
// corpus content.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLength is the number of hex characters used for truncated
// fingerprints. 16 hex chars = 8 bytes = 64 bits of entropy (sufficient
// for collision resistance).
const FingerprintLength = 16

// Fingerprint hashes an ordered sequence of strings into a truncated
// hex digest. Parts are separated by a NUL byte so that moving text
// across part boundaries changes the result.
func Fingerprint(parts []string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))[:FingerprintLength]
}
