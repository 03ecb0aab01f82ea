package source

import (
	"io"

	"github.com/hupe1980/wordbloom"
	"github.com/hupe1980/wordbloom/blobstore"
	s3store "github.com/hupe1980/wordbloom/blobstore/s3"
	"github.com/hupe1980/wordbloom/resource"
)

// MinIOStoreFunc builds a store for a MinIO endpoint and bucket.
type MinIOStoreFunc func(endpoint, bucket string) (blobstore.BlobStore, error)

type options struct {
	stdin       io.Reader
	local       blobstore.BlobStore
	s3Client    s3store.Client
	minioStore  MinIOStoreFunc
	minioSecure bool
	controller  *resource.Controller
	logger      *wordbloom.Logger
}

// Option configures a Resolver.
type Option func(*options)

// WithStdin sets the reader used for "-". Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithLocalStore replaces the store used for file paths.
func WithLocalStore(s blobstore.BlobStore) Option {
	return func(o *options) {
		o.local = s
	}
}

// WithS3Client sets the S3 client. Without it the client is built from the
// default AWS configuration on first use.
func WithS3Client(c s3store.Client) Option {
	return func(o *options) {
		o.s3Client = c
	}
}

// WithMinIOStoreFunc overrides how MinIO stores are built.
func WithMinIOStoreFunc(fn MinIOStoreFunc) Option {
	return func(o *options) {
		o.minioStore = fn
	}
}

// WithMinIOSecure makes MinIO connections use TLS.
func WithMinIOSecure(secure bool) Option {
	return func(o *options) {
		o.minioSecure = secure
	}
}

// WithController bounds fetch concurrency, buffered memory and bandwidth.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *wordbloom.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
