// Package source turns dictionary locations given on the command line into
// readers.
//
// Supported forms:
//
//	-                          standard input
//	s3://bucket/key            Amazon S3 (credentials from the default AWS chain)
//	minio://host:port/bucket/key  MinIO or another S3-compatible server
//	anything else              a local file path
//
// FetchAll opens many locations concurrently and returns the readers in the
// order they were given, so words are inserted deterministically.
package source
