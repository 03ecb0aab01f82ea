package wordbloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a Bloom filter under construction.
//
// A Filter is owned by a single goroutine while the dictionary loads. Call
// Freeze to obtain an immutable FrozenFilter for query traffic.
type Filter struct {
	state
}

// FrozenFilter is an immutable Bloom filter. It never changes after Freeze
// and is safe for concurrent use by multiple goroutines.
type FrozenFilter struct {
	state
}

// Stats is the read-only view shared by Filter and FrozenFilter.
type Stats interface {
	Size() uint64
	HashCount() uint32
	Count() uint64
	BitsSet() uint64
	FillRatio() float64
	EstimatedFalsePositiveRate() float64
}

// state holds the bit array and the parameters shared by Filter and FrozenFilter.
type state struct {
	bits  *bitset.BitSet
	m     uint64   // bit-array size
	k     uint32   // hash functions per item
	count uint64   // Add calls, duplicates included
	hash  HashFunc // never nil
}

// maxSize is the largest bit-array the platform can address.
var maxSize uint64 = math.MaxUint

// New creates an empty filter with size bits and hashCount hash functions.
//
// A zero size or zero hashCount is rejected with a *ConfigError that matches
// ErrInvalidConfiguration, as is a size beyond what a uint can index.
func New(size uint64, hashCount uint32, optFns ...Option) (*Filter, error) {
	if size == 0 || hashCount == 0 {
		return nil, &ConfigError{Size: size, HashCount: hashCount}
	}
	if size > maxSize {
		return nil, &ConfigError{Size: size, HashCount: hashCount, Limit: maxSize}
	}

	opts := options{
		hash: Murmur3,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Filter{
		state: state{
			bits: bitset.New(uint(size)),
			m:    size,
			k:    hashCount,
			hash: opts.hash,
		},
	}, nil
}

// Add inserts item. Adding the same item again leaves the bit array unchanged.
func (f *Filter) Add(item string) {
	for i := uint32(0); i < f.k; i++ {
		f.bits.Set(uint(f.location(item, i)))
	}
	f.count++
}

// Freeze returns an immutable copy of the filter. The Filter stays usable;
// later Adds do not affect the returned FrozenFilter.
func (f *Filter) Freeze() *FrozenFilter {
	s := f.state
	s.bits = f.bits.Clone()
	return &FrozenFilter{state: s}
}

// Contains reports whether item may have been added.
//
// false means item was definitely never added. true means item was added or
// is a false positive.
func (s *state) Contains(item string) bool {
	for i := uint32(0); i < s.k; i++ {
		if !s.bits.Test(uint(s.location(item, i))) {
			return false
		}
	}
	return true
}

// Hash returns the seed-th hash of item before reduction to a bit position.
func (s *state) Hash(item string, seed uint32) uint64 {
	return s.hash(item, seed)
}

func (s *state) location(item string, seed uint32) uint64 {
	return s.hash(item, seed) % s.m
}

// Size returns the number of bits (m).
func (s *state) Size() uint64 { return s.m }

// HashCount returns the number of hash functions (k).
func (s *state) HashCount() uint32 { return s.k }

// Count returns the number of Add calls, including repeated items.
func (s *state) Count() uint64 { return s.count }

// BitsSet returns the number of bits currently set.
func (s *state) BitsSet() uint64 { return uint64(s.bits.Count()) }

// FillRatio returns the fraction of bits set, in [0, 1].
func (s *state) FillRatio() float64 {
	return float64(s.BitsSet()) / float64(s.m)
}

// EstimatedFalsePositiveRate returns the probability that a never-added item
// is reported present, computed from the actual fill ratio as fill^k.
func (s *state) EstimatedFalsePositiveRate() float64 {
	return math.Pow(s.FillRatio(), float64(s.k))
}
