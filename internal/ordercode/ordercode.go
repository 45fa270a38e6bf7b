// Package ordercode generates customer-facing order codes. Codes are
// sampled from a crypto-secure source so they stay non-sequential and
// unguessable relative to order volume.
package ordercode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the standard code length.
	Length = 10

	// FallbackLength is used after maxAttempts collisions; the longer
	// code is accepted without a uniqueness check (residual collision
	// risk is accepted).
	FallbackLength = Length + 4

	maxAttempts = 10
)

// ExistsFunc reports whether a candidate code is already taken in the
// order ledger.
type ExistsFunc func(code string) (bool, error)

// Generate produces a code unique per exists, retrying up to 10 times
// before falling back to an unchecked 14-character code.
func Generate(exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code, err := random(Length)
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return random(FallbackLength)
}

func random(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("ordercode: random: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
