package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
	}{
		{"-", Location{Scheme: SchemeStdin}},
		{"words.txt", Location{Scheme: SchemeFile, Key: "words.txt"}},
		{"/usr/share/dict/words", Location{Scheme: SchemeFile, Key: "/usr/share/dict/words"}},
		{"s3://dicts/es/words.txt.gz", Location{Scheme: SchemeS3, Bucket: "dicts", Key: "es/words.txt.gz"}},
		{"minio://localhost:9000/dicts/words.txt", Location{Scheme: SchemeMinIO, Host: "localhost:9000", Bucket: "dicts", Key: "words.txt"}},
		{"minio://storage/dicts/a/b.txt", Location{Scheme: SchemeMinIO, Host: "storage", Bucket: "dicts", Key: "a/b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Scheme, got.Scheme)
			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Bucket, got.Bucket)
			assert.Equal(t, tt.want.Key, got.Key)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"s3://",
		"s3://bucket",
		"s3://bucket/",
		"s3:///key",
		"minio://host/bucket",
		"minio://host//key",
		"minio:///bucket/key",
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidLocation, raw)
	}
}

func TestParseAll(t *testing.T) {
	locs, err := ParseAll([]string{"a.txt", "-", "s3://b/k"})
	require.NoError(t, err)
	require.Len(t, locs, 3)
	assert.Equal(t, SchemeStdin, locs[1].Scheme)

	_, err = ParseAll([]string{"-", "a.txt", "-"})
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = ParseAll([]string{"a.txt", ""})
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
