// Package s3 provides a client for S3-compatible object storage.
//
// The onboarding tool uses it to archive failure reports so support can
// retrieve them without the operator forwarding terminal output. Any
// S3-compatible service works; path-style addressing is available for
// services such as MinIO that do not support virtual-hosted buckets.
package s3
