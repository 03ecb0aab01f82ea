package mmap

import "errors"

// AccessPattern is a hint to the kernel about how mapped pages will be read.
type AccessPattern int

const (
	// AccessDefault applies no specific advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects a single front-to-back pass.
	AccessSequential
	// AccessWillNeed asks the kernel to start reading ahead.
	AccessWillNeed
	// AccessDontNeed releases pages that are no longer needed.
	AccessDontNeed
)

var (
	// ErrClosed is returned when a closed mapping is accessed.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for files whose size cannot be mapped.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned for slices outside the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
)
