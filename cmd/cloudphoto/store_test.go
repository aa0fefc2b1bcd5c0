package main

import (
	"context"
	"testing"

	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/configuration"
	"github.com/adampresley/cloudphoto/pkg/services"
	"github.com/adampresley/cloudphoto/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectStore(t *testing.T) {
	config := configuration.Config{
		AwsEndpointUrl:     "http://localhost:9000",
		AwsRegion:          "us-east-1",
		AwsAccessKeyId:     "minioadmin",
		AwsSecretAccessKey: "minioadmin",
		StorageBackend:     configuration.BackendS3,
	}

	store, err := newObjectStore(context.Background(), &config)
	require.NoError(t, err)
	assert.IsType(t, &storage.S3Store{}, store)

	config.StorageBackend = configuration.BackendMinio

	store, err = newObjectStore(context.Background(), &config)
	require.NoError(t, err)
	assert.IsType(t, &storage.MinioStore{}, store)
}

func TestStorageAlbumService_SetupFailure(t *testing.T) {
	config := configuration.Config{
		AwsEndpointUrl:     "localhost:9000",
		StorageBackend:     configuration.BackendMinio,
		MaxTransferWorkers: 1,
	}

	service := newStorageAlbumService(&config, nil)

	_, err := service.ListAlbums(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no host")

	_, err = service.AlbumExists(context.Background(), "summer")
	assert.Error(t, err)
	assert.Nil(t, service.service)
}

func TestStorageAlbumService_BuildsStoreOnFirstUse(t *testing.T) {
	config := configuration.Config{
		AwsEndpointUrl:     "http://localhost:9000",
		AwsRegion:          "us-east-1",
		AwsAccessKeyId:     "minioadmin",
		AwsSecretAccessKey: "minioadmin",
		StorageBackend:     configuration.BackendMinio,
		MaxTransferWorkers: 1,
	}

	service := newStorageAlbumService(&config, nil)
	assert.Nil(t, service.service)

	albumService, err := service.albumService(context.Background())
	require.NoError(t, err)
	assert.IsType(t, services.AlbumService{}, albumService)
}
