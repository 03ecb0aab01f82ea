// Package testutil provides testing utilities for wordbloom.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random word generator and helpers that write
// dictionaries to temporary files.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	w := rng.Word(5)             // e.g. "qzmta"
//	ws := rng.Words(1000, 8)     // 1000 distinct 8-letter words
//
// # Dictionaries on Disk
//
//	path := testutil.WriteDictionary(t, []string{"alpha", "beta"})
package testutil
