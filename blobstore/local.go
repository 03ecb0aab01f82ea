package blobstore

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/hupe1980/wordbloom/internal/mmap"
)

// LocalStore implements BlobStore using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at root. An empty root resolves
// names against the working directory; absolute names are used as-is.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps the named file into memory with a sequential access hint.
func (s *LocalStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(s.root, name)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)

	return &localBlob{m: m, size: int64(m.Len())}, nil
}

type localBlob struct {
	m    *mmap.Mapping
	size int64
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return b.size
}

func (b *localBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := b.m.Slice(off, length)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *localBlob) Bytes() ([]byte, error) {
	data := b.m.Bytes()
	if data == nil && b.size > 0 {
		return nil, mmap.ErrClosed
	}
	return data, nil
}
