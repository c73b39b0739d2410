// Package seed generates human-readable seed names.
//
// Seed names are two character names joined together, the label players
// share to regenerate the same ROM. Entropy comes from crypto/rand so
// concurrent requests never collide on a shared PRNG state.
package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// New returns a fresh two-name seed string.
func New() (string, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", fmt.Errorf("read seed entropy: %w", err)
	}
	rng := rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
	return names[rng.Intn(len(names))] + names[rng.Intn(len(names))], nil
}
