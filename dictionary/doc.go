// Package dictionary loads word lists into a Bloom filter.
//
// A dictionary is a stream of words, one per line. Each line is normalized
// with Normalize before insertion; queries must use the same function.
//
// # Compression
//
// Load sniffs the first bytes of the stream and transparently decodes
// gzip, zstd and LZ4-frame input. Anything else is read as plain text.
//
// # Malformed Lines
//
// A line that is not valid UTF-8 does not abort the load. It is skipped,
// logged (throttled) and recorded in Report.SkippedLines. WithStrict turns the
// first malformed line into an error; WithMaxSkipped bounds how many may be
// tolerated. Errors from the underlying reader are always fatal.
package dictionary
