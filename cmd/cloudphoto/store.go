package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/configuration"
	"github.com/adampresley/cloudphoto/pkg/models"
	"github.com/adampresley/cloudphoto/pkg/services"
	"github.com/adampresley/cloudphoto/pkg/storage"
)

func newObjectStore(ctx context.Context, config *configuration.Config) (storage.ObjectStore, error) {
	if config.StorageBackend == configuration.BackendMinio {
		minioStore, err := storage.NewMinioStore(storage.MinioStoreConfig{
			Endpoint:        config.AwsEndpointUrl,
			Region:          config.AwsRegion,
			AccessKeyID:     config.AwsAccessKeyId,
			SecretAccessKey: config.AwsSecretAccessKey,
		})

		if err != nil {
			return nil, err
		}

		return minioStore, nil
	}

	s3Store, err := storage.NewS3Store(ctx, storage.S3StoreConfig{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	})

	if err != nil {
		return nil, err
	}

	return s3Store, nil
}

/*
storageAlbumService is an AlbumServicer that creates the object store the
first time a command needs it. A store that cannot be created fails that
call and every later one with the same error.
*/
type storageAlbumService struct {
	config                *configuration.Config
	photoDirectoryService services.PhotoDirectoryServicer

	once    sync.Once
	service services.AlbumServicer
	err     error
}

func newStorageAlbumService(config *configuration.Config, photoDirectoryService services.PhotoDirectoryServicer) *storageAlbumService {
	return &storageAlbumService{
		config:                config,
		photoDirectoryService: photoDirectoryService,
	}
}

func (s *storageAlbumService) albumService(ctx context.Context) (services.AlbumServicer, error) {
	s.once.Do(func() {
		store, err := newObjectStore(ctx, s.config)

		if err != nil {
			slog.Error("failed to set up object storage client", "backend", s.config.StorageBackend, "error", err)
			s.err = fmt.Errorf("error setting up object storage client: %w", err)
			return
		}

		s.service = services.NewAlbumService(services.AlbumServiceConfig{
			MaxWorkers:            s.config.MaxTransferWorkers,
			PhotoDirectoryService: s.photoDirectoryService,
			Store:                 store,
		})
	})

	return s.service, s.err
}

func (s *storageAlbumService) AlbumExists(ctx context.Context, album string) (bool, error) {
	service, err := s.albumService(ctx)

	if err != nil {
		return false, err
	}

	return service.AlbumExists(ctx, album)
}

func (s *storageAlbumService) CreateAlbum(ctx context.Context, album string) error {
	service, err := s.albumService(ctx)

	if err != nil {
		return err
	}

	return service.CreateAlbum(ctx, album)
}

func (s *storageAlbumService) DownloadAlbum(ctx context.Context, album string) ([]models.Photo, error) {
	service, err := s.albumService(ctx)

	if err != nil {
		return nil, err
	}

	return service.DownloadAlbum(ctx, album)
}

func (s *storageAlbumService) ListAlbums(ctx context.Context) ([]models.Album, error) {
	service, err := s.albumService(ctx)

	if err != nil {
		return nil, err
	}

	return service.ListAlbums(ctx)
}

func (s *storageAlbumService) ListPhotos(ctx context.Context, album string) ([]string, error) {
	service, err := s.albumService(ctx)

	if err != nil {
		return nil, err
	}

	return service.ListPhotos(ctx, album)
}

func (s *storageAlbumService) UploadPhoto(ctx context.Context, album, path string) error {
	service, err := s.albumService(ctx)

	if err != nil {
		return err
	}

	return service.UploadPhoto(ctx, album, path)
}

func (s *storageAlbumService) UploadPhotos(ctx context.Context, album string, paths []string) error {
	service, err := s.albumService(ctx)

	if err != nil {
		return err
	}

	return service.UploadPhotos(ctx, album, paths)
}
