package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocation is returned for locations that cannot be parsed.
var ErrInvalidLocation = errors.New("invalid dictionary location")

// Scheme identifies where a dictionary is read from.
type Scheme string

// Supported schemes.
const (
	SchemeStdin Scheme = "stdin"
	SchemeFile  Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinIO Scheme = "minio"
)

// Location is a parsed dictionary location.
type Location struct {
	Scheme Scheme
	// Host is the MinIO endpoint (host[:port]). Empty for other schemes.
	Host string
	// Bucket is the object store bucket. Empty for stdin and files.
	Bucket string
	// Key is the object key, or the file path for SchemeFile.
	Key string

	raw string
}

// String returns the location as it was given to Parse.
func (l Location) String() string {
	return l.raw
}

// Parse parses a dictionary location.
func Parse(raw string) (Location, error) {
	switch {
	case raw == "":
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	case raw == "-":
		return Location{Scheme: SchemeStdin, raw: raw}, nil
	case strings.HasPrefix(raw, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(raw, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %q: want s3://bucket/key", ErrInvalidLocation, raw)
		}
		return Location{Scheme: SchemeS3, Bucket: bucket, Key: key, raw: raw}, nil
	case strings.HasPrefix(raw, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(raw, "minio://"), "/", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return Location{}, fmt.Errorf("%w: %q: want minio://host[:port]/bucket/key", ErrInvalidLocation, raw)
		}
		return Location{Scheme: SchemeMinIO, Host: parts[0], Bucket: parts[1], Key: parts[2], raw: raw}, nil
	default:
		return Location{Scheme: SchemeFile, Key: raw, raw: raw}, nil
	}
}

// ParseAll parses every location and rejects more than one stdin entry.
func ParseAll(raws []string) ([]Location, error) {
	locs := make([]Location, 0, len(raws))
	stdin := false
	for _, raw := range raws {
		loc, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		if loc.Scheme == SchemeStdin {
			if stdin {
				return nil, fmt.Errorf("%w: standard input given more than once", ErrInvalidLocation)
			}
			stdin = true
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
