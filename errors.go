package wordbloom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a filter is constructed with a
	// zero bit-array size or zero hash functions.
	ErrInvalidConfiguration = errors.New("wordbloom: invalid configuration")

	// ErrInvalidFalsePositiveRate is returned by sizing helpers when p is not in (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("wordbloom: false positive rate must be in (0, 1)")
)

// ConfigError describes a rejected (m, k) pair.
//
// errors.Is(err, ErrInvalidConfiguration) reports true for every ConfigError.
type ConfigError struct {
	Size      uint64
	HashCount uint32
	// Limit is set when Size exceeds the platform's addressable bit count.
	Limit uint64
}

func (e *ConfigError) Error() string {
	switch {
	case e.Limit > 0 && e.Size > e.Limit:
		return fmt.Sprintf("%v: size %d exceeds platform limit %d", ErrInvalidConfiguration, e.Size, e.Limit)
	case e.Size == 0 && e.HashCount == 0:
		return fmt.Sprintf("%v: size and hash count must be positive", ErrInvalidConfiguration)
	case e.Size == 0:
		return fmt.Sprintf("%v: size must be positive (hash count %d)", ErrInvalidConfiguration, e.HashCount)
	default:
		return fmt.Sprintf("%v: hash count must be positive (size %d)", ErrInvalidConfiguration, e.Size)
	}
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }
