package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/time/rate"
)

// readBufferSize is the buffer between the source and the line splitter.
const readBufferSize = 64 * 1024

// ctxCheckInterval is how many lines are read between context checks.
const ctxCheckInterval = 1024

// Inserter receives normalized words. *wordbloom.Filter satisfies it.
type Inserter interface {
	Add(word string)
}

// Report summarizes one Load call.
type Report struct {
	Lines        uint64            // Lines read, including blank and skipped ones
	Words        uint64            // Words passed to the Inserter
	Blank        uint64            // Lines empty after normalization
	Skipped      uint64            // Malformed lines that were skipped
	SkippedLines *roaring64.Bitmap // 1-based numbers of skipped lines
	Compression  Compression       // Detected stream encoding
	Duration     time.Duration     // Wall time of the load
}

// Normalize trims surrounding whitespace (including a trailing '\r') and
// lower-cases word. Use it for both dictionary entries and queries.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Load reads words from r, one per line, and adds each normalized word to dst.
//
// The returned Report is never nil; on error it describes the lines read
// before the failure. Read and decode failures wrap ErrSourceUnreadable.
func Load(ctx context.Context, r io.Reader, dst Inserter, optFns ...Option) (*Report, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	rep := &Report{
		SkippedLines: roaring64.New(),
		Compression:  CompressionNone,
	}

	err := load(ctx, r, dst, &opts, rep)
	rep.Duration = time.Since(start)

	opts.logger.LogLoad(ctx, rep.Words, rep.Skipped, rep.Duration, err)
	opts.metrics.RecordLoad(rep.Words, rep.Skipped, rep.Duration, err)

	return rep, err
}

func load(ctx context.Context, r io.Reader, dst Inserter, opts *options, rep *Report) error {
	br := bufio.NewReaderSize(r, readBufferSize)

	c, err := detectCompression(br)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	rep.Compression = c

	lr := br
	if c != CompressionNone {
		src, closeFn, err := decompress(br, c)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, c, err)
		}
		defer closeFn()
		lr = bufio.NewReaderSize(src, readBufferSize)
	}

	warn := rate.Sometimes{First: opts.warnFirst, Interval: opts.warnEvery}

	for {
		if rep.Lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line, readErr := lr.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: line %d: %w", ErrSourceUnreadable, rep.Lines+1, readErr)
		}
		if line == "" && readErr != nil {
			return nil // clean EOF
		}

		rep.Lines++
		if err := insertLine(ctx, line, dst, opts, rep, &warn); err != nil {
			return err
		}

		if readErr != nil {
			return nil // last line without newline
		}
	}
}

func insertLine(ctx context.Context, line string, dst Inserter, opts *options, rep *Report, warn *rate.Sometimes) error {
	if !utf8.ValidString(line) {
		lerr := &LineError{Line: rep.Lines, Err: ErrInvalidUTF8}
		if opts.strict {
			return lerr
		}

		rep.Skipped++
		rep.SkippedLines.Add(rep.Lines)
		warn.Do(func() { opts.logger.LogSkippedLine(ctx, rep.Lines, lerr) })

		if opts.maxSkipped > 0 && rep.Skipped > opts.maxSkipped {
			return fmt.Errorf("%w: %d lines skipped, limit %d", ErrTooManyMalformed, rep.Skipped, opts.maxSkipped)
		}
		return nil
	}

	word := Normalize(line)
	if word == "" {
		rep.Blank++
		return nil
	}

	dst.Add(word)
	rep.Words++
	return nil
}
