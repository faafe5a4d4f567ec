package generator

import (
	"crypto/rand"
	"math/big"
)

const (
	// Alphabet is the character set for generated codes and custom aliases.
	// Codes are case-sensitive.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// MinAliasLength is the minimum length for a custom alias
	MinAliasLength = 4
	// MaxCodeLength bounds both generated codes and custom aliases
	MaxCodeLength = 32
	// DefaultCodeLength is used when no length is configured
	DefaultCodeLength = 6
)

// Base62Generator produces random short codes from the base62 alphabet.
// Uniqueness is the caller's responsibility; the draw only needs to make
// collisions rare at the expected namespace size.
type Base62Generator struct {
	length int
}

// NewBase62Generator creates a generator producing codes of the given length
func NewBase62Generator(length int) *Base62Generator {
	if length < MinAliasLength || length > MaxCodeLength {
		length = DefaultCodeLength
	}
	return &Base62Generator{length: length}
}

// Generate returns a candidate code of the configured length
func (g *Base62Generator) Generate() (string, error) {
	b := make([]byte, g.length)
	max := big.NewInt(int64(len(Alphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b), nil
}

// Length returns the configured code length
func (g *Base62Generator) Length() int {
	return g.length
}

// MaxCapacity returns the size of the namespace for a given length
func (g *Base62Generator) MaxCapacity(length int) uint64 {
	alphabetLen := uint64(len(Alphabet))
	capacity := uint64(1)
	for i := 0; i < length; i++ {
		capacity *= alphabetLen
	}
	return capacity
}

// IsValidCode checks that a string uses only the base62 alphabet and fits
// the accepted length range. Used for custom alias validation and for
// rejecting junk on the redirect path before any store access.
func IsValidCode(s string) bool {
	if len(s) < MinAliasLength || len(s) > MaxCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlphabetChar(s[i]) {
			return false
		}
	}
	return true
}

func isAlphabetChar(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
