package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	rng := NewRNG(4711)

	w := rng.Word(5)

	assert.Len(t, w, 5)
	for _, c := range w {
		assert.Contains(t, Letters, string(c))
	}
}

func TestWords_Distinct(t *testing.T) {
	rng := NewRNG(4711)

	words := rng.Words(500, 3)

	assert.Len(t, words, 500)
	assert.Len(t, Set(words), 500)
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)

	first := rng.Words(10, 6)
	rng.Reset()
	second := rng.Words(10, 6)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestWriteDictionary(t *testing.T) {
	path := WriteDictionary(t, []string{"alpha", "beta"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", string(data))
}
