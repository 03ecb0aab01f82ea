// Package s3 reads dictionaries from Amazon S3.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil { ... }
//
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "dictionaries/")
//	data, err := store.Download(ctx, "es/words.txt.gz")
//
// # Features
//
//   - Ranged GETs through the blobstore.Blob interface
//   - Parallel part downloads via the transfer manager
//   - Configurable key prefix
package s3
