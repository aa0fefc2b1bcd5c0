// Package storage provides access to the object store that holds albums.
// Every album is a bucket and every photo is an object inside it.
package storage

import (
	"context"
	"io"
	"time"
)

//go:generate go tool mockgen -source=ObjectStore.go -destination=storagetest/MockObjectStore.go -package=storagetest

// ObjectStore is the set of bucket and object operations cloudphoto needs
// from an S3-compatible service.
type ObjectStore interface {
	// ListBuckets returns the names of all buckets visible to the credentials.
	ListBuckets(ctx context.Context) ([]string, error)
	// CreateBucket creates a new bucket.
	CreateBucket(ctx context.Context, bucket string) error
	// ListObjects returns every object in a bucket. A missing bucket
	// yields ErrBucketNotFound.
	ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error)
	// GetObject reads the full content of an object.
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	// PutObject writes an object, replacing any existing one.
	PutObject(ctx context.Context, input PutObjectInput) error
}

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// PutObjectInput describes an upload. Size is the length of Body, or -1
// when unknown.
type PutObjectInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
}
