package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"building-service/internal/config"
)

// NewMinioClient initializes a MinIO client and ensures the bucket exists.
// created reports whether the bucket had to be made.
func NewMinioClient(ctx context.Context, cfg *config.Config) (client *minio.Client, created bool, err error) {
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSSL,
	})
	if err != nil {
		return nil, false, err
	}
	// Ensure the bucket exists (create if not present)
	exists, errBucket := minioClient.BucketExists(ctx, cfg.MinioBucket)
	if errBucket != nil {
		return nil, false, errBucket
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: ""})
		if err != nil {
			return nil, false, err
		}
	}
	return minioClient, !exists, nil
}

// MinioObjectStore uploads objects into a single bucket.
type MinioObjectStore struct {
	client *minio.Client
	bucket string
}

// NewMinioObjectStore creates an object store bound to bucket.
func NewMinioObjectStore(client *minio.Client, bucket string) *MinioObjectStore {
	return &MinioObjectStore{client: client, bucket: bucket}
}

// Bucket returns the target bucket name.
func (s *MinioObjectStore) Bucket() string { return s.bucket }

// Put uploads size bytes from r under key.
func (s *MinioObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to upload to MinIO")
	}
	return nil
}
