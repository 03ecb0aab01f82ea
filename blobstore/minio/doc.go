// Package minio reads dictionaries from MinIO and other S3-compatible
// servers (Ceph, Garage, SeaweedFS) through the MinIO Go client.
//
//	client, err := minio.NewClient("localhost:9000", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minio.NewStore(client, "dictionaries", "")
//
// NewClient reads credentials from MINIO_ROOT_USER/MINIO_ROOT_PASSWORD or
// MINIO_ACCESS_KEY/MINIO_SECRET_KEY, falling back to AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY. Without any of them requests are anonymous.
package minio
