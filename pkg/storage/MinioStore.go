package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStoreConfig struct {
	// Endpoint is a URL such as https://storage.yandexcloud.net. The scheme
	// decides whether TLS is used.
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MinioStore implements ObjectStore with the MinIO client.
type MinioStore struct {
	client *minio.Client
	region string
}

func NewMinioStore(config MinioStoreConfig) (*MinioStore, error) {
	var (
		err      error
		endpoint *url.URL
		client   *minio.Client
	)

	if endpoint, err = url.Parse(config.Endpoint); err != nil {
		return nil, newError("parseEndpoint", err)
	}

	if endpoint.Host == "" {
		return nil, newError("parseEndpoint", fmt.Errorf("endpoint '%s' has no host", config.Endpoint))
	}

	client, err = minio.New(endpoint.Host, &minio.Options{
		Creds:  minioCredentials(config),
		Secure: endpoint.Scheme == "https",
		Region: config.Region,
	})

	if err != nil {
		return nil, newError("newClient", err)
	}

	return &MinioStore{
		client: client,
		region: config.Region,
	}, nil
}

/*
minioCredentials uses the configured keys when both are set. Otherwise
credentials come from the AWS environment variables or the shared
credentials file, the same places the S3 client looks.
*/
func minioCredentials(config MinioStoreConfig) *credentials.Credentials {
	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		return credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, "")
	}

	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
	})
}

func (s *MinioStore) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := s.client.ListBuckets(ctx)

	if err != nil {
		return nil, newError("listBuckets", translateMinioError(err))
	}

	result := make([]string, 0, len(buckets))

	for _, bucket := range buckets {
		result = append(result, bucket.Name)
	}

	return result, nil
}

func (s *MinioStore) CreateBucket(ctx context.Context, bucket string) error {
	err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{
		Region: s.region,
	})

	if err != nil {
		return newBucketError("createBucket", bucket, translateMinioError(err))
	}

	return nil
}

func (s *MinioStore) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	var (
		err    error
		exists bool
	)

	// The listing channel reports a missing bucket only as an opaque
	// error object, so check up front.
	if exists, err = s.client.BucketExists(ctx, bucket); err != nil {
		return nil, newBucketError("listObjects", bucket, translateMinioError(err))
	}

	if !exists {
		return nil, newBucketError("listObjects", bucket, ErrBucketNotFound)
	}

	result := []ObjectInfo{}

	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, newBucketError("listObjects", bucket, translateMinioError(obj.Err))
		}

		result = append(result, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return result, nil
}

func (s *MinioStore) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})

	if err != nil {
		return nil, newObjectError("getObject", bucket, key, translateMinioError(err))
	}

	defer obj.Close()

	b, err := io.ReadAll(obj)

	if err != nil {
		return nil, newObjectError("getObject", bucket, key, translateMinioError(err))
	}

	return b, nil
}

func (s *MinioStore) PutObject(ctx context.Context, input PutObjectInput) error {
	_, err := s.client.PutObject(ctx, input.Bucket, input.Key, input.Body, input.Size, minio.PutObjectOptions{
		ContentType: input.ContentType,
	})

	if err != nil {
		return newObjectError("putObject", input.Bucket, input.Key, translateMinioError(err))
	}

	return nil
}

func translateMinioError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket":
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)

	case "NoSuchKey":
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}

	return err
}
