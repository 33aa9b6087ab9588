package s3

import (
	"context"
	"fmt"
)

// ObjectStore is the subset of Client the archiver needs.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	CreateBucket(ctx context.Context, bucketName string) error
	PutObject(ctx context.Context, bucketName, key, contentType string, data []byte) error
}

var _ ObjectStore = (*Client)(nil)

// Archiver stores JSON documents in one bucket.
type Archiver struct {
	store  ObjectStore
	bucket string
}

// NewArchiver creates an archiver writing to bucket.
func NewArchiver(store ObjectStore, bucket string) *Archiver {
	return &Archiver{store: store, bucket: bucket}
}

// Upload stores data under key, creating the bucket on first use, and
// returns the object's s3:// URI.
func (a *Archiver) Upload(ctx context.Context, key string, data []byte) (string, error) {
	exists, err := a.store.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := a.store.CreateBucket(ctx, a.bucket); err != nil {
			return "", err
		}
	}

	if err := a.store.PutObject(ctx, a.bucket, key, "application/json", data); err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
