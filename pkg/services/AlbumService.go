package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/cloudphoto/pkg/models"
	"github.com/adampresley/cloudphoto/pkg/storage"
	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
)

type AlbumServicer interface {
	AlbumExists(ctx context.Context, album string) (bool, error)
	CreateAlbum(ctx context.Context, album string) error
	DownloadAlbum(ctx context.Context, album string) ([]models.Photo, error)
	ListAlbums(ctx context.Context) ([]models.Album, error)
	ListPhotos(ctx context.Context, album string) ([]string, error)
	UploadPhoto(ctx context.Context, album, path string) error
	UploadPhotos(ctx context.Context, album string, paths []string) error
}

type AlbumServiceConfig struct {
	MaxWorkers            int
	PhotoDirectoryService PhotoDirectoryServicer
	Store                 storage.ObjectStore
}

type AlbumService struct {
	maxWorkers            int
	photoDirectoryService PhotoDirectoryServicer
	store                 storage.ObjectStore
}

func NewAlbumService(config AlbumServiceConfig) AlbumService {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 1
	}

	return AlbumService{
		maxWorkers:            config.MaxWorkers,
		photoDirectoryService: config.PhotoDirectoryService,
		store:                 config.Store,
	}
}

func (s AlbumService) AlbumExists(ctx context.Context, album string) (bool, error) {
	var (
		err    error
		albums []models.Album
	)

	if albums, err = s.ListAlbums(ctx); err != nil {
		return false, err
	}

	for _, a := range albums {
		if a.Name == album {
			return true, nil
		}
	}

	return false, nil
}

func (s AlbumService) CreateAlbum(ctx context.Context, album string) error {
	slog.Info("creating album", "album", album)

	if err := s.store.CreateBucket(ctx, album); err != nil {
		return fmt.Errorf("error creating album '%s': %w", album, err)
	}

	return nil
}

/*
DownloadAlbum fetches every photo in an album. Photos come back in the
order the store lists them, regardless of which finished first.
*/
func (s AlbumService) DownloadAlbum(ctx context.Context, album string) ([]models.Photo, error) {
	var (
		err     error
		objects []storage.ObjectInfo
	)

	if objects, err = s.listObjects(ctx, album); err != nil {
		return nil, err
	}

	// Keys ending in a slash are folder markers with no photo behind them.
	objects = slices.Filter(objects, func(obj storage.ObjectInfo) bool {
		return !strings.HasSuffix(obj.Key, "/")
	})

	result := make([]models.Photo, len(objects))

	pool := pond.NewPool(s.maxWorkers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for index, obj := range objects {
		group.SubmitErr(func() error {
			content, err := s.store.GetObject(ctx, album, obj.Key)

			if err != nil {
				return fmt.Errorf("error downloading photo '%s' from album '%s': %w", obj.Key, album, err)
			}

			slog.Debug("downloaded photo", "album", album, "key", obj.Key, "size", len(content))

			result[index] = models.Photo{
				Album:   album,
				Key:     obj.Key,
				Content: content,
			}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s AlbumService) ListAlbums(ctx context.Context) ([]models.Album, error) {
	var (
		err     error
		buckets []string
	)

	if buckets, err = s.store.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("error listing albums: %w", err)
	}

	result := slices.Map(buckets, func(input string, index int) models.Album {
		return models.Album{Name: input}
	})

	return result, nil
}

func (s AlbumService) ListPhotos(ctx context.Context, album string) ([]string, error) {
	var (
		err     error
		objects []storage.ObjectInfo
	)

	if objects, err = s.listObjects(ctx, album); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(objects))

	for _, obj := range objects {
		result = append(result, obj.Key)
	}

	return result, nil
}

/*
UploadPhoto stores a local file in an album under its base name. The
content type is sniffed from the file itself.
*/
func (s AlbumService) UploadPhoto(ctx context.Context, album, path string) error {
	var (
		err  error
		data []byte
	)

	if data, err = s.photoDirectoryService.ReadFile(path); err != nil {
		return err
	}

	key := filepath.Base(path)

	err = s.store.PutObject(ctx, storage.PutObjectInput{
		Bucket:      album,
		Key:         key,
		Body:        bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: mimetype.Detect(data).String(),
	})

	if err != nil {
		return fmt.Errorf("error uploading photo '%s' to album '%s': %w", path, album, err)
	}

	slog.Debug("uploaded photo", "album", album, "key", key, "size", len(data))
	return nil
}

func (s AlbumService) UploadPhotos(ctx context.Context, album string, paths []string) error {
	pool := pond.NewPool(s.maxWorkers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, path := range paths {
		group.SubmitErr(func() error {
			return s.UploadPhoto(ctx, album, path)
		})
	}

	return group.Wait()
}

func (s AlbumService) listObjects(ctx context.Context, album string) ([]storage.ObjectInfo, error) {
	objects, err := s.store.ListObjects(ctx, album)

	if errors.Is(err, storage.ErrBucketNotFound) {
		return nil, fmt.Errorf("error listing photos in album '%s': %w", album, models.ErrAlbumNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("error listing photos in album '%s': %w", album, err)
	}

	return objects, nil
}
