package dictionary

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/hupe1980/wordbloom"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	words []string
}

func (r *recorder) Add(word string) { r.words = append(r.words, word) }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hola", "hola"},
		{"MUNDO\r\n", "mundo"},
		{"  Ñandú \t", "ñandú"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestLoad_PlainText(t *testing.T) {
	rec := &recorder{}
	input := "Alpha\nBETA\r\n\ngamma"

	rep, err := Load(context.Background(), strings.NewReader(input), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, rec.words)
	assert.Equal(t, uint64(4), rep.Lines)
	assert.Equal(t, uint64(3), rep.Words)
	assert.Equal(t, uint64(1), rep.Blank)
	assert.Equal(t, uint64(0), rep.Skipped)
	assert.True(t, rep.SkippedLines.IsEmpty())
	assert.Equal(t, CompressionNone, rep.Compression)
}

func TestLoad_Empty(t *testing.T) {
	rec := &recorder{}

	rep, err := Load(context.Background(), strings.NewReader(""), rec)
	require.NoError(t, err)
	assert.Empty(t, rec.words)
	assert.Equal(t, uint64(0), rep.Lines)
}

func TestLoad_LongLine(t *testing.T) {
	rec := &recorder{}
	long := strings.Repeat("a", 3*readBufferSize)

	_, err := Load(context.Background(), strings.NewReader(long+"\nb\n"), rec)
	require.NoError(t, err)
	require.Len(t, rec.words, 2)
	assert.Len(t, rec.words[0], len(long))
	assert.Equal(t, "b", rec.words[1])
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	rec := &recorder{}
	input := "uno\n\xff\xfe\ndos\nbad\xc3\n"

	rep, err := Load(context.Background(), strings.NewReader(input), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"uno", "dos"}, rec.words)
	assert.Equal(t, uint64(2), rep.Skipped)
	assert.Equal(t, []uint64{2, 4}, rep.SkippedLines.ToArray())
}

func TestLoad_Strict(t *testing.T) {
	rec := &recorder{}
	input := "uno\n\xff\ndos\n"

	rep, err := Load(context.Background(), strings.NewReader(input), rec, WithStrict())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	var lerr *LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, uint64(2), lerr.Line)
	assert.Equal(t, []string{"uno"}, rec.words)
	assert.Equal(t, uint64(0), rep.Skipped)
}

func TestLoad_MaxSkipped(t *testing.T) {
	rec := &recorder{}
	input := "\xff\n\xff\nok\n\xff\n"

	rep, err := Load(context.Background(), strings.NewReader(input), rec, WithMaxSkipped(2))
	require.ErrorIs(t, err, ErrTooManyMalformed)
	assert.Equal(t, uint64(3), rep.Skipped)
	assert.Equal(t, []string{"ok"}, rec.words)
}

func TestLoad_ReaderFailure(t *testing.T) {
	boom := errors.New("disk on fire")

	rec := &recorder{}
	_, err := Load(context.Background(), iotest.ErrReader(boom), rec)
	require.ErrorIs(t, err, ErrSourceUnreadable)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.words)
}

func TestLoad_ReaderFailureMidStream(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("uno\ndos\n"), iotest.ErrReader(boom))

	rec := &recorder{}
	rep, err := Load(context.Background(), r, rec)
	require.ErrorIs(t, err, ErrSourceUnreadable)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"uno", "dos"}, rec.words)
	assert.Equal(t, uint64(2), rep.Words)
}

func TestLoad_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	_, err := Load(ctx, strings.NewReader("uno\n"), rec)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.words)
}

func TestLoad_Compressed(t *testing.T) {
	plain := []byte("Alpha\nBeta\nGamma\n")

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write(plain)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		assertLoadsCompressed(t, buf.Bytes(), CompressionGzip)
	})

	t.Run("zstd", func(t *testing.T) {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write(plain)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		assertLoadsCompressed(t, buf.Bytes(), CompressionZstd)
	})

	t.Run("lz4", func(t *testing.T) {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		_, err := zw.Write(plain)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		assertLoadsCompressed(t, buf.Bytes(), CompressionLZ4)
	})
}

func assertLoadsCompressed(t *testing.T, data []byte, want Compression) {
	t.Helper()

	rec := &recorder{}
	rep, err := Load(context.Background(), bytes.NewReader(data), rec)
	require.NoError(t, err)
	assert.Equal(t, want, rep.Compression)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, rec.words)
}

func TestLoad_CorruptGzip(t *testing.T) {
	data := []byte{0x1f, 0x8b, 0x00, 0x00, 0x01}

	_, err := Load(context.Background(), bytes.NewReader(data), &recorder{})
	require.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestLoad_IntoFilter(t *testing.T) {
	f, err := wordbloom.New(10_000, 5)
	require.NoError(t, err)

	mc := &wordbloom.BasicMetricsCollector{}
	_, err = Load(context.Background(), strings.NewReader("Alpha\nBeta\nGamma\n"), f, WithMetricsCollector(mc))
	require.NoError(t, err)

	for _, w := range []string{"ALPHA", "beta", "Gamma"} {
		assert.True(t, f.Contains(Normalize(w)), "expected %q to be possibly present", w)
	}
	assert.False(t, f.Contains(Normalize("zzzz_control_unlikely")))

	assert.Equal(t, int64(1), mc.LoadCount.Load())
	assert.Equal(t, int64(3), mc.WordsLoaded.Load())
	assert.Equal(t, int64(0), mc.LoadErrors.Load())
}

func TestLoad_ThrottlesWarnings(t *testing.T) {
	var logs bytes.Buffer
	logger := wordbloom.NewJSONLogger(&logs, slog.LevelDebug)

	input := strings.Repeat("\xff\n", 5) + "ok\n"
	rep, err := Load(context.Background(), strings.NewReader(input), &recorder{},
		WithLogger(logger),
		WithWarningRate(2, time.Hour),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), rep.Skipped)
	assert.Equal(t, 2, strings.Count(logs.String(), "skipping dictionary line"))
	assert.Contains(t, logs.String(), "dictionary loaded with skipped lines")
}
