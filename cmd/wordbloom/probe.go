package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/wordbloom"
	"github.com/hupe1980/wordbloom/internal/message"
)

const (
	sampleWordLength = 5
	letters          = "abcdefghijklmnopqrstuvwxyz"
)

// sampleAbsent returns up to n distinct random lowercase words that are not
// in known. It gives up after a bounded number of attempts.
func sampleAbsent(rng *rand.Rand, n int, known map[string]struct{}) []string {
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	buf := make([]byte, sampleWordLength)

	for attempts := 0; len(words) < n && attempts < n*100; attempts++ {
		for i := range buf {
			buf[i] = letters[rng.IntN(len(letters))]
		}
		w := string(buf)
		if _, ok := known[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func (a *app) reportFalsePositives(f *wordbloom.FrozenFilter, known map[string]struct{}) {
	seed := a.cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	samples := sampleAbsent(rng, a.cfg.fpSamples, known)
	stats := wordbloom.Probe(f, samples, func(w string) bool {
		_, ok := known[w]
		return ok
	})

	a.logger.Info("false positive probe",
		"samples", len(samples),
		"false_positives", stats.ConfirmedFPs,
		"observed_fpr", stats.ObservedFPRate,
		"effectiveness_pct", stats.Effectiveness(),
	)

	fmt.Fprintln(a.stdout, a.msg.Sprintf(message.FalsePositives,
		stats.ConfirmedFPs, len(samples), stats.ObservedFPRate, f.EstimatedFalsePositiveRate()))
}
