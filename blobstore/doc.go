// Package blobstore abstracts where dictionary files live.
//
// A BlobStore opens named blobs; a Blob exposes its size and ranged reads.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-process map, mostly for tests
//   - s3.Store: Amazon S3 with ranged and parallel reads
//   - minio.Store: MinIO and other S3-compatible servers
//
// Use NewReader to stream a whole blob into dictionary.Load:
//
//	blob, err := store.Open(ctx, "words.txt")
//	if err != nil { ... }
//	r, err := blobstore.NewReader(ctx, blob)
//	if err != nil { ... }
//	defer r.Close()
package blobstore
