// Package storagetest provides ObjectStore doubles for tests.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/adampresley/cloudphoto/pkg/storage"
)

var (
	ErrBucketExists = errors.New("bucket already exists")
)

type memoryObject struct {
	content      []byte
	contentType  string
	lastModified time.Time
}

// MemoryStore is an in-memory ObjectStore. Buckets and keys are listed in
// lexical order, like S3 does. It counts calls so tests can assert that
// no store traffic happened.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]map[string]memoryObject
	calls   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: map[string]map[string]memoryObject{},
	}
}

// Calls returns the number of ObjectStore methods invoked so far.
func (s *MemoryStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

// ContentType returns the content type an object was stored with.
func (s *MemoryStore) ContentType(bucket, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buckets[bucket][key].contentType
}

func (s *MemoryStore) ListBuckets(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	result := make([]string, 0, len(s.buckets))

	for name := range s.buckets {
		result = append(result, name)
	}

	sort.Strings(result)
	return result, nil
}

func (s *MemoryStore) CreateBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if _, ok := s.buckets[bucket]; ok {
		return fmt.Errorf("bucket %s: %w", bucket, ErrBucketExists)
	}

	s.buckets[bucket] = map[string]memoryObject{}
	return nil
}

func (s *MemoryStore) ListObjects(ctx context.Context, bucket string) ([]storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	objects, ok := s.buckets[bucket]

	if !ok {
		return nil, fmt.Errorf("bucket %s: %w", bucket, storage.ErrBucketNotFound)
	}

	result := make([]storage.ObjectInfo, 0, len(objects))

	for key, obj := range objects {
		result = append(result, storage.ObjectInfo{
			Key:          key,
			Size:         int64(len(obj.content)),
			LastModified: obj.lastModified,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result, nil
}

func (s *MemoryStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	objects, ok := s.buckets[bucket]

	if !ok {
		return nil, fmt.Errorf("bucket %s: %w", bucket, storage.ErrBucketNotFound)
	}

	obj, ok := objects[key]

	if !ok {
		return nil, fmt.Errorf("object %s/%s: %w", bucket, key, storage.ErrObjectNotFound)
	}

	result := make([]byte, len(obj.content))
	copy(result, obj.content)
	return result, nil
}

func (s *MemoryStore) PutObject(ctx context.Context, input storage.PutObjectInput) error {
	b, err := io.ReadAll(input.Body)

	if err != nil {
		return fmt.Errorf("error reading body for %s/%s: %w", input.Bucket, input.Key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	objects, ok := s.buckets[input.Bucket]

	if !ok {
		return fmt.Errorf("bucket %s: %w", input.Bucket, storage.ErrBucketNotFound)
	}

	objects[input.Key] = memoryObject{
		content:      b,
		contentType:  input.ContentType,
		lastModified: time.Now(),
	}

	return nil
}
