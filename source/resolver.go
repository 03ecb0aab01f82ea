package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/wordbloom"
	"github.com/hupe1980/wordbloom/blobstore"
	"github.com/hupe1980/wordbloom/blobstore/minio"
	s3store "github.com/hupe1980/wordbloom/blobstore/s3"
	"github.com/hupe1980/wordbloom/dictionary"
	"github.com/hupe1980/wordbloom/resource"
	"golang.org/x/sync/errgroup"
)

// Resolver opens Locations. Object store clients are created lazily and
// shared between calls. It is safe for concurrent use.
type Resolver struct {
	opts options

	mu       sync.Mutex
	s3Client s3store.Client
	minio    map[string]blobstore.BlobStore
}

// NewResolver creates a Resolver.
func NewResolver(optFns ...Option) *Resolver {
	opts := options{
		stdin:  os.Stdin,
		local:  blobstore.NewLocalStore(""),
		logger: wordbloom.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	r := &Resolver{
		opts:     opts,
		s3Client: opts.s3Client,
		minio:    make(map[string]blobstore.BlobStore),
	}
	if r.opts.minioStore == nil {
		r.opts.minioStore = r.dialMinIO
	}
	return r
}

// Open returns a reader over the dictionary at loc. Closing it releases any
// underlying blob. Standard input is never closed.
func (r *Resolver) Open(ctx context.Context, loc Location) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)

	switch loc.Scheme {
	case SchemeStdin:
		rc = io.NopCloser(r.opts.stdin)
	case SchemeFile:
		rc, err = r.openBlob(ctx, r.opts.local, loc.Key)
	case SchemeS3:
		rc, err = r.openS3(ctx, loc)
	case SchemeMinIO:
		var store blobstore.BlobStore
		if store, err = r.minioStore(loc.Host, loc.Bucket); err == nil {
			rc, err = r.openBlob(ctx, store, loc.Key)
		}
	default:
		err = fmt.Errorf("%w: unknown scheme %q", ErrInvalidLocation, loc.Scheme)
	}
	if err != nil {
		return nil, &FetchError{Location: loc, Err: err}
	}

	r.opts.logger.Debug("dictionary source opened", "source", loc.String(), "scheme", string(loc.Scheme))

	return &readCloser{
		Reader: resource.NewThrottledReader(ctx, rc, r.opts.controller),
		Closer: rc,
	}, nil
}

// FetchAll opens every location concurrently, at most the controller's
// MaxConcurrentFetches at a time, and returns the readers in input order.
// If any location fails, readers already opened are closed and the first
// error is returned.
func (r *Resolver) FetchAll(ctx context.Context, locs []Location) ([]io.ReadCloser, error) {
	readers := make([]io.ReadCloser, len(locs))

	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range locs {
		g.Go(func() error {
			if err := r.opts.controller.AcquireFetch(gctx); err != nil {
				return &FetchError{Location: loc, Err: err}
			}
			defer r.opts.controller.ReleaseFetch()

			// Readers outlive the group, so they are bound to the caller's ctx.
			rd, err := r.Open(ctx, loc)
			if err != nil {
				return err
			}
			readers[i] = rd
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, rd := range readers {
			if rd != nil {
				_ = rd.Close()
			}
		}
		return nil, err
	}

	return readers, nil
}

func (r *Resolver) openBlob(ctx context.Context, store blobstore.BlobStore, name string) (io.ReadCloser, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return blobstore.NewReader(ctx, blob)
}

// openS3 buffers the whole object with a parallel download. The buffer stays
// reserved against the memory limit until the reader is closed, so objects
// fetched together must fit under the limit together.
func (r *Resolver) openS3(ctx context.Context, loc Location) (io.ReadCloser, error) {
	client, err := r.s3(ctx)
	if err != nil {
		return nil, err
	}
	store := s3store.NewStore(client, loc.Bucket, "")

	blob, err := store.Open(ctx, loc.Key)
	if err != nil {
		return nil, err
	}
	size := blob.Size()
	_ = blob.Close()

	if err := r.opts.controller.AcquireMemory(size); err != nil {
		return nil, err
	}

	data, err := store.Download(ctx, loc.Key)
	if err != nil {
		r.opts.controller.ReleaseMemory(size)
		return nil, err
	}

	return &readCloser{
		Reader: bytes.NewReader(data),
		Closer: closerFunc(func() error {
			r.opts.controller.ReleaseMemory(size)
			return nil
		}),
	}, nil
}

func (r *Resolver) s3(ctx context.Context) (s3store.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil {
		return r.s3Client, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	r.s3Client = s3.NewFromConfig(cfg)
	return r.s3Client, nil
}

func (r *Resolver) minioStore(endpoint, bucket string) (blobstore.BlobStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := endpoint + "/" + bucket
	if s, ok := r.minio[key]; ok {
		return s, nil
	}
	s, err := r.opts.minioStore(endpoint, bucket)
	if err != nil {
		return nil, err
	}
	r.minio[key] = s
	return s, nil
}

func (r *Resolver) dialMinIO(endpoint, bucket string) (blobstore.BlobStore, error) {
	client, err := minio.NewClient(endpoint, r.opts.minioSecure)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return minio.NewStore(client, bucket, ""), nil
}

// FetchError reports a location that could not be opened. It matches
// dictionary.ErrSourceUnreadable.
type FetchError struct {
	Location Location
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{dictionary.ErrSourceUnreadable, e.Err}
}

type readCloser struct {
	io.Reader
	io.Closer
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
