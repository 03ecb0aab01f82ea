package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// Letters is the alphabet used by Word.
const Letters = "abcdefghijklmnopqrstuvwxyz"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Word returns a random lower-case word of the given length.
func (r *RNG) Word(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wordLocked(length)
}

func (r *RNG) wordLocked(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(Letters[r.rand.Intn(len(Letters))])
	}
	return sb.String()
}

// Words returns num distinct random words of the given length.
// num must not exceed 26^length.
func (r *RNG) Words(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	words := make([]string, 0, num)
	for len(words) < num {
		w := r.wordLocked(length)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// Set returns words as a membership set.
func Set(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// WriteDictionary writes words, one per line, to a file in t.TempDir and
// returns its path.
func WriteDictionary(t testing.TB, words []string) string {
	t.Helper()
	return WriteFile(t, "words.txt", []byte(strings.Join(words, "\n")+"\n"))
}

// WriteFile writes data to name in t.TempDir and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
