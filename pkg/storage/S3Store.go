package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const (
	defaultAwsRegion = "us-east-1"
)

type S3StoreConfig struct {
	// Endpoint is the base URL of an S3-compatible service. Leave empty for AWS.
	Endpoint string
	Region   string
	// AccessKeyID and SecretAccessKey are optional. When empty the default
	// credential chain (environment, shared profile, instance role) is used.
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store implements ObjectStore with the AWS SDK.
type S3Store struct {
	client         *s3.Client
	uploader       *manager.Uploader
	region         string
	customEndpoint bool
}

func NewS3Store(ctx context.Context, config S3StoreConfig) (*S3Store, error) {
	var (
		err    error
		awsCfg aws.Config
	)

	loadOptions := []func(*awsconfig.LoadOptions) error{}

	if config.Region != "" {
		loadOptions = append(loadOptions, awsconfig.WithRegion(config.Region))
	}

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}

	if awsCfg, err = awsconfig.LoadDefaultConfig(ctx, loadOptions...); err != nil {
		return nil, newError("loadConfig", err)
	}

	if awsCfg.Region == "" {
		awsCfg.Region = defaultAwsRegion
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint == "" {
			return
		}

		// S3-compatible services do not all understand virtual-host
		// addressing or the newer default checksums.
		o.BaseEndpoint = aws.String(config.Endpoint)
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Store{
		client:         client,
		uploader:       manager.NewUploader(client),
		region:         awsCfg.Region,
		customEndpoint: config.Endpoint != "",
	}, nil
}

func (s *S3Store) ListBuckets(ctx context.Context) ([]string, error) {
	output, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})

	if err != nil {
		return nil, newError("listBuckets", translateS3Error(err))
	}

	result := make([]string, 0, len(output.Buckets))

	for _, bucket := range output.Buckets {
		result = append(result, aws.ToString(bucket.Name))
	}

	return result, nil
}

func (s *S3Store) CreateBucket(ctx context.Context, bucket string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}

	// AWS rejects an explicit us-east-1 constraint and requires one
	// everywhere else.
	if !s.customEndpoint && s.region != defaultAwsRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		return newBucketError("createBucket", bucket, translateS3Error(err))
	}

	return nil
}

func (s *S3Store) ListObjects(ctx context.Context, bucket string) ([]ObjectInfo, error) {
	result := []ObjectInfo{}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)

		if err != nil {
			return nil, newBucketError("listObjects", bucket, translateS3Error(err))
		}

		for _, obj := range page.Contents {
			result = append(result, ObjectInfo{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return result, nil
}

func (s *S3Store) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, newObjectError("getObject", bucket, key, translateS3Error(err))
	}

	defer output.Body.Close()

	b, err := io.ReadAll(output.Body)

	if err != nil {
		return nil, newObjectError("getObject", bucket, key, err)
	}

	return b, nil
}

func (s *S3Store) PutObject(ctx context.Context, input PutObjectInput) error {
	putInput := &s3.PutObjectInput{
		Bucket: aws.String(input.Bucket),
		Key:    aws.String(input.Key),
		Body:   input.Body,
	}

	if input.ContentType != "" {
		putInput.ContentType = aws.String(input.ContentType)
	}

	if _, err := s.uploader.Upload(ctx, putInput); err != nil {
		return newObjectError("putObject", input.Bucket, input.Key, translateS3Error(err))
	}

	return nil
}

func translateS3Error(err error) error {
	var (
		apiErr smithy.APIError
	)

	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "NoSuchBucket":
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)

	case "NoSuchKey":
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}

	return err
}
