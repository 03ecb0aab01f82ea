// Package wordbloom provides a Bloom filter for dictionary membership checks.
//
// A Bloom filter answers "is this word in the dictionary?" with one of two
// outcomes:
//   - "definitely not present": no false negatives, ever
//   - "possibly present": the word was added, or it collides with words that were
//
// The trade-off is intentional. A filter of m bits with k hash functions
// stores any number of words in constant space; the false positive rate grows
// with the number of inserted words n:
//
//	P(false positive) ≈ (1 - e^(-kn/m))^k
//
// # Quick Start
//
//	f, err := wordbloom.New(1_000_000, 5)
//	if err != nil { ... }
//
//	f.Add("hola")
//	f.Add("mundo")
//
//	frozen := f.Freeze()
//	frozen.Contains("hola")  // true
//	frozen.Contains("adios") // false, or a false positive
//
// Use OptimalParams to size a filter for an expected word count:
//
//	m, k, _ := wordbloom.OptimalParams(235_000, 0.01)
//
// # Build, then Freeze
//
// A Filter is mutable and owned by one goroutine while the dictionary loads.
// Freeze copies it into a FrozenFilter that never changes and can be shared by
// any number of readers.
//
// # Hashing
//
// The k bit positions of a word come from one 64-bit primitive called with
// seeds 0..k-1 and reduced modulo m. The default primitive is MurmurHash3 x64,
// so bit positions are reproducible across runs and platforms. WithHashFunc
// substitutes another HashFunc.
//
// # Case Normalization
//
// The filter hashes bytes exactly as given. Callers normalize words the same
// way at load and query time; dictionary.Normalize exists for that.
package wordbloom
