// Package daily picks a deterministic word index for each calendar day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a BLAKE2b-256
// MAC keyed by salt over YYYY-MM-DD, reduced modulo n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h, err := blake2b.New256(key(salt))
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// key fits salt into BLAKE2b's 64-byte key limit.
func key(salt string) []byte {
	if len(salt) <= blake2b.Size {
		return []byte(salt)
	}
	sum := blake2b.Sum512([]byte(salt))
	return sum[:]
}
