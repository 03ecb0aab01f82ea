package s3

import (
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/wordbloom/blobstore"
)

// Client is the subset of the S3 API used by Store. *s3.Client satisfies it.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Option configures a Store.
type Option func(*Store)

// WithPartSize sets the part size used by Download. Values below the
// transfer manager minimum are ignored.
func WithPartSize(size int64) Option {
	return func(s *Store) {
		if size >= manager.MinUploadPartSize {
			s.partSize = size
		}
	}
}

// WithConcurrency sets how many parts Download fetches in parallel.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client      Client
	bucket      string
	prefix      string
	partSize    int64
	concurrency int
}

// NewStore creates an S3 blob store. rootPrefix is prepended to every key.
func NewStore(client Client, bucket, rootPrefix string, optFns ...Option) *Store {
	s := &Store{
		client:      client,
		bucket:      bucket,
		prefix:      rootPrefix,
		partSize:    manager.DefaultDownloadPartSize,
		concurrency: manager.DefaultDownloadConcurrency,
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open issues a HeadObject to resolve the size and returns a ranged-read blob.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Download fetches the whole object into memory using parallel ranged GETs.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.PartSize = s.partSize
		d.Concurrency = s.concurrency
	})

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}); err != nil {
		return nil, mapError(err)
	}

	return buf.Bytes(), nil
}

func mapError(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return blobstore.ErrNotFound
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return blobstore.ErrNotFound
	}
	return err
}
