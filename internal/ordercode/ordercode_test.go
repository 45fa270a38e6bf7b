package ordercode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func never(string) (bool, error) { return false, nil }

func TestGenerate_LengthAndCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := Generate(never)
		assert.NoError(t, err)
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.Contains(t, alphabet, string(r))
		}
	}
}

func TestGenerate_RetriesUntilUnique(t *testing.T) {
	taken := map[string]bool{}
	calls := 0
	exists := func(code string) (bool, error) {
		calls++
		// first three candidates collide
		if calls <= 3 {
			taken[code] = true
			return true, nil
		}
		return taken[code], nil
	}

	code, err := Generate(exists)
	assert.NoError(t, err)
	assert.Len(t, code, Length)
	assert.False(t, taken[code])
	assert.Equal(t, 4, calls)
}

func TestGenerate_FallbackAfterExhaustedRetries(t *testing.T) {
	exists := func(string) (bool, error) { return true, nil }

	code, err := Generate(exists)
	assert.NoError(t, err)
	assert.Len(t, code, FallbackLength)
}

func TestGenerate_NoDuplicatesAcrossLedger(t *testing.T) {
	seen := map[string]bool{}
	exists := func(code string) (bool, error) { return seen[code], nil }

	for i := 0; i < 200; i++ {
		code, err := Generate(exists)
		assert.NoError(t, err)
		assert.False(t, seen[code], "code %s issued twice", code)
		seen[code] = true
	}
}

func TestGenerate_LedgerError(t *testing.T) {
	exists := func(string) (bool, error) { return false, errors.New("db down") }

	_, err := Generate(exists)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "db down"))
}
