package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/wordbloom/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.HeadObjectOutput)
	return out, args.Error(1)
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func TestStore_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "dicts")

	t.Run("NotFound", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "dicts/missing.txt"
		})).Return(nil, &types.NotFound{}).Once()

		_, err := store.Open(context.Background(), "missing.txt")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Key == "dicts/words.txt"
		})).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(11),
		}, nil).Once()

		blob, err := store.Open(context.Background(), "words.txt")
		require.NoError(t, err)
		assert.Equal(t, int64(11), blob.Size())
		assert.NoError(t, blob.Close())
	})

	mockClient.AssertExpectations(t)
}

func TestBlob_ReadRange(t *testing.T) {
	mockClient := new(MockS3Client)
	blob := &s3Blob{client: mockClient, bucket: "b", key: "words.txt", size: 11}

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Key == "words.txt" && *input.Range == "bytes=6-10"
	})).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("beta\n")),
	}, nil).Once()

	rc, err := blob.ReadRange(context.Background(), 6, 100)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "beta\n", string(data))

	_, err = blob.ReadRange(context.Background(), 11, 1)
	assert.ErrorIs(t, err, io.EOF)

	mockClient.AssertExpectations(t)
}

func TestBlob_NewReader(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "b", "")

	mockClient.On("HeadObject", mock.Anything, mock.Anything).Return(&s3.HeadObjectOutput{
		ContentLength: aws.Int64(11),
	}, nil).Once()
	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
		return *input.Range == "bytes=0-10"
	})).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("alpha\nbeta\n")),
	}, nil).Once()

	blob, err := store.Open(context.Background(), "words.txt")
	require.NoError(t, err)
	r, err := blobstore.NewReader(context.Background(), blob)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", string(data))
}

func TestStore_Download(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(MockS3Client)
		store := NewStore(mockClient, "b", "dicts", WithConcurrency(2))

		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Key == "dicts/words.txt"
		})).Return(&s3.GetObjectOutput{
			Body:          io.NopCloser(strings.NewReader("alpha\nbeta\n")),
			ContentLength: aws.Int64(11),
			ContentRange:  aws.String("bytes 0-10/11"),
		}, nil).Once()

		data, err := store.Download(context.Background(), "words.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha\nbeta\n", string(data))
		mockClient.AssertExpectations(t)
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		mockClient := new(MockS3Client)
		store := NewStore(mockClient, "b", "")

		mockClient.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Download(context.Background(), "words.txt")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Other error", func(t *testing.T) {
		mockClient := new(MockS3Client)
		store := NewStore(mockClient, "b", "")

		boom := errors.New("access denied")
		mockClient.On("GetObject", mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := store.Download(context.Background(), "words.txt")
		assert.ErrorIs(t, err, boom)
	})
}

func TestOptions(t *testing.T) {
	s := NewStore(nil, "b", "", WithPartSize(1), WithConcurrency(0))
	assert.Equal(t, int64(5*1024*1024), s.partSize)
	assert.Equal(t, 5, s.concurrency)

	s = NewStore(nil, "b", "", WithPartSize(16*1024*1024), WithConcurrency(8))
	assert.Equal(t, int64(16*1024*1024), s.partSize)
	assert.Equal(t, 8, s.concurrency)
}
