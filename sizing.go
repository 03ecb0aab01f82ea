package wordbloom

import "math"

const maxHashCount = 32

// OptimalParams returns the bit-array size m and hash count k that minimize
// the false positive rate p for n expected items.
//
//	m = -n*ln(p) / (ln 2)^2
//	k = round((m/n) * ln 2)
//
// n <= 0 is treated as 1. k is clamped to [1, 32].
func OptimalParams(n int, p float64) (m uint64, k uint32, err error) {
	if p <= 0 || p >= 1 || math.IsNaN(p) {
		return 0, 0, ErrInvalidFalsePositiveRate
	}
	if n <= 0 {
		n = 1
	}

	mFloat := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	m = uint64(mFloat)
	if m < 1 {
		m = 1
	}

	kFloat := math.Round(float64(m) / float64(n) * math.Ln2)
	switch {
	case kFloat < 1:
		k = 1
	case kFloat > maxHashCount:
		k = maxHashCount
	default:
		k = uint32(kFloat)
	}

	return m, k, nil
}

// FalsePositiveRate returns the expected false positive rate of a filter with
// m bits and k hash functions after n distinct insertions:
//
//	(1 - e^(-k*n/m))^k
func FalsePositiveRate(m uint64, k uint32, n uint64) float64 {
	if m == 0 || k == 0 {
		return 1
	}
	if n == 0 {
		return 0
	}
	kn := float64(k) * float64(n)
	return math.Pow(1-math.Exp(-kn/float64(m)), float64(k))
}
