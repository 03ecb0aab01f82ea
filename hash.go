package wordbloom

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/spaolacci/murmur3"
)

// HashFunc derives the seed-th hash of item.
//
// Implementations must be deterministic: the same (item, seed) pair always
// yields the same value. Different seeds should yield values that behave
// like independent hash functions.
type HashFunc func(item string, seed uint32) uint64

// Murmur3 hashes item with MurmurHash3 x64 using seed as the hash seed.
// It is the default because its output is published and reproducible across
// processes, platforms and languages.
func Murmur3(item string, seed uint32) uint64 {
	return murmur3.Sum64WithSeed([]byte(item), seed)
}

// FNV1a feeds item followed by the little-endian seed into 64-bit FNV-1a.
func FNV1a(item string, seed uint32) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(item))

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)
	_, _ = h.Write(buf[:])

	return h.Sum64()
}

// HashByName returns the built-in HashFunc registered under name.
func HashByName(name string) (HashFunc, bool) {
	switch name {
	case "", "murmur3":
		return Murmur3, true
	case "fnv1a":
		return FNV1a, true
	default:
		return nil, false
	}
}
