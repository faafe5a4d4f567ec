package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_Consistency(t *testing.T) {
	input := "aB3xY9"

	hash1 := HashString(input)
	hash2 := HashString(input)

	assert.Equal(t, hash1, hash2, "hash should be consistent across calls")
}

func TestHashString_Distribution(t *testing.T) {
	// Codes sharing a prefix still spread across queues
	hashes := make(map[uint64]bool)
	inputs := []string{
		"aB3xY9", "aB3xY8", "aB3xY7", "code01", "code02", "mylink", "short1", "short2",
	}

	for _, input := range inputs {
		hashes[HashString(input)] = true
	}

	assert.Len(t, hashes, len(inputs), "distinct codes should hash apart")
}

func TestHashString_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, HashString("ABCDEF"), HashString("abcdef"))
}

func TestHashString_Empty(t *testing.T) {
	assert.NotEqual(t, HashString(""), HashString("something"))
}
