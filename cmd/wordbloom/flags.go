package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/wordbloom"
	"github.com/hupe1980/wordbloom/internal/conv"
	"github.com/hupe1980/wordbloom/source"
)

var errHelp = errors.New("help requested")

type config struct {
	size          uint64
	hashCount     uint32
	expectedWords int
	targetFPR     float64
	word          string
	interactive   bool
	dicts         []source.Location
	lang          string
	hash          wordbloom.HashFunc
	strict        bool
	maxSkipped    uint64
	fetchLimit    int64
	ioLimit       int64
	memoryLimit   int64
	fpSamples     int
	seed          uint64
	metricsAddr   string
	minioSecure   bool
	logLevel      slog.Level
	logFormat     string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var (
		cfg           config
		dicts         arrayFlags
		hashName      string
		hashFunctions uint
		logLevel      string
		fpSamples     int
		err           error
	)

	fs := flag.NewFlagSet("wordbloom", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Uint64Var(&cfg.size, "size", 1000000, "Size of the bitmap in bits")
	fs.UintVar(&hashFunctions, "hash-functions", 5, "Number of hash functions to use")
	fs.IntVar(&cfg.expectedWords, "expected-words", 0, "Size the filter for this many words (with -target-fpr, overrides -size and -hash-functions)")
	fs.Float64Var(&cfg.targetFPR, "target-fpr", 0, "Target false-positive rate used with -expected-words")
	fs.StringVar(&cfg.word, "word", "", "Word to check in the Bloom filter")
	fs.BoolVar(&cfg.interactive, "interactive", false, "Read words to check from standard input, one per line")
	fs.Var(&dicts, "dict", "Dictionary location: path, -, s3://bucket/key or minio://host/bucket/key (repeatable, default words.txt)")
	fs.StringVar(&cfg.lang, "lang", "es", "Output language (es, en)")
	fs.StringVar(&hashName, "hash", "murmur3", "Hash function (murmur3, fnv1a)")
	fs.BoolVar(&cfg.strict, "strict", false, "Fail on the first malformed dictionary line")
	fs.Uint64Var(&cfg.maxSkipped, "max-skipped", 0, "Fail after this many malformed lines per dictionary (0 = unlimited)")
	fs.Int64Var(&cfg.fetchLimit, "fetch-concurrency", 4, "Maximum dictionaries fetched at once (0 = unlimited)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "Dictionary read limit in bytes per second (0 = unlimited)")
	fs.Int64Var(&cfg.memoryLimit, "memory-limit", 0, "Maximum bytes of remote dictionaries buffered in memory (0 = unlimited)")
	fs.IntVar(&fpSamples, "fp-samples", 0, "Probe this many random 5-letter words absent from the dictionary and report the false-positive rate")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Seed for -fp-samples (0 = random)")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	fs.BoolVar(&cfg.minioSecure, "minio-secure", false, "Use TLS for minio:// dictionaries")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log format (text, json)")

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cfg.word == "" && !cfg.interactive && fpSamples == 0 {
		return nil, errors.New("one of -word, -interactive or -fp-samples is required")
	}
	if fpSamples < 0 {
		return nil, errors.New("-fp-samples must not be negative")
	}
	cfg.fpSamples = fpSamples

	if cfg.hashCount, err = conv.UintToUint32(hashFunctions); err != nil {
		return nil, fmt.Errorf("-hash-functions: %w", err)
	}
	if (cfg.expectedWords > 0) != (cfg.targetFPR > 0) {
		return nil, errors.New("-expected-words and -target-fpr must be given together")
	}

	hash, ok := wordbloom.HashByName(hashName)
	if !ok {
		return nil, fmt.Errorf("unknown hash function %q", hashName)
	}
	cfg.hash = hash

	if err := cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q", logLevel)
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, fmt.Errorf("invalid -log-format %q", cfg.logFormat)
	}

	if len(dicts) == 0 {
		dicts = arrayFlags{"words.txt"}
	}
	locs, err := source.ParseAll(dicts)
	if err != nil {
		return nil, err
	}
	for _, loc := range locs {
		if loc.Scheme == source.SchemeStdin && cfg.interactive {
			return nil, errors.New("-dict - cannot be combined with -interactive")
		}
	}
	cfg.dicts = locs

	return &cfg, nil
}
