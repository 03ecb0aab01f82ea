package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// BlobStore opens immutable blobs by name.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a stored object.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadRange returns a reader over length bytes starting at off.
	// Reading past the end of the blob is truncated.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// Mappable is implemented by blobs whose contents are directly addressable.
type Mappable interface {
	// Bytes returns the blob contents. The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// NewReader returns a reader over the whole blob. Closing the reader also
// closes the blob.
func NewReader(ctx context.Context, b Blob) (io.ReadCloser, error) {
	if b.Size() == 0 {
		return &blobReader{Reader: strings.NewReader(""), blob: b}, nil
	}

	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return nil, errors.Join(err, b.Close())
	}

	return &blobReader{Reader: rc, body: rc, blob: b}, nil
}

type blobReader struct {
	io.Reader
	body io.Closer
	blob Blob
}

func (r *blobReader) Close() error {
	var err error
	if r.body != nil {
		err = r.body.Close()
	}
	return errors.Join(err, r.blob.Close())
}
