package configuration

import (
	"fmt"

	"github.com/adampresley/configinator"
)

const (
	BackendS3    = "s3"
	BackendMinio = "minio"
)

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"https://storage.yandexcloud.net" description:"S3-compatible endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"ru-central1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID. Leave empty to use the default credential chain"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"warn" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxTransferWorkers int    `flag:"workers" env:"MAX_TRANSFER_WORKERS" default:"4" description:"Maximum number of concurrent photo uploads or downloads"`
	StorageBackend     string `flag:"backend" env:"STORAGE_BACKEND" default:"s3" description:"Object storage client to use. Valid values are 's3' and 'minio'"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c Config) Validate() error {
	if c.StorageBackend != BackendS3 && c.StorageBackend != BackendMinio {
		return fmt.Errorf("unknown storage backend '%s'. valid values are '%s' and '%s'", c.StorageBackend, BackendS3, BackendMinio)
	}

	if c.MaxTransferWorkers < 1 {
		return fmt.Errorf("max transfer workers must be at least 1, got %d", c.MaxTransferWorkers)
	}

	return nil
}
