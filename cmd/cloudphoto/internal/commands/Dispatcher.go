package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/arguments"
	"github.com/adampresley/cloudphoto/pkg/models"
	"github.com/adampresley/cloudphoto/pkg/services"
)

type DispatcherConfig struct {
	AlbumService          services.AlbumServicer
	Output                io.Writer
	PhotoDirectoryService services.PhotoDirectoryServicer
}

/*
Dispatcher runs a single command. User-facing messages go to the
configured output. Every failure is also returned so the caller can pick
an exit code.
*/
type Dispatcher struct {
	albumService          services.AlbumServicer
	output                io.Writer
	photoDirectoryService services.PhotoDirectoryServicer
}

func NewDispatcher(config DispatcherConfig) Dispatcher {
	return Dispatcher{
		albumService:          config.AlbumService,
		output:                config.Output,
		photoDirectoryService: config.PhotoDirectoryService,
	}
}

func (d Dispatcher) Execute(ctx context.Context, args arguments.Arguments) error {
	command, ok := FindCommand(args.Command)

	if !ok {
		d.println(MessageWrongCommand)
		return fmt.Errorf("%w: '%s'", ErrUnknownCommand, args.Command)
	}

	slog.Debug("executing command", "command", command.Name, "path", args.Path, "album", args.Album)

	switch command.Name {
	case CommandList:
		return d.list(ctx, args)

	case CommandUpload:
		return d.upload(ctx, args)

	case CommandDownload:
		return d.download(ctx, args)

	default:
		d.println(HelpText())
		return nil
	}
}

func (d Dispatcher) list(ctx context.Context, args arguments.Arguments) error {
	if args.Album != "" {
		return d.listPhotos(ctx, args.Album)
	}

	albums, err := d.albumService.ListAlbums(ctx)

	if err != nil {
		return d.storageFailure(err)
	}

	d.println(MessageAlbumListHeader)

	for index, album := range albums {
		d.printf("%d) %s\n", index+1, album.Name)
	}

	return nil
}

func (d Dispatcher) listPhotos(ctx context.Context, album string) error {
	photos, err := d.albumService.ListPhotos(ctx, album)

	if errors.Is(err, models.ErrAlbumNotFound) {
		d.println(MessageAlbumNotFound)
		return err
	}

	if err != nil {
		return d.storageFailure(err)
	}

	d.printf(MessagePhotoListHeader+"\n", album)

	for index, photo := range photos {
		d.printf("%d) %s\n", index+1, photo)
	}

	return nil
}

func (d Dispatcher) upload(ctx context.Context, args arguments.Arguments) error {
	var (
		err    error
		dir    string
		exists bool
		photos []string
	)

	if dir, err = d.requireParameters(args); err != nil {
		return err
	}

	if exists, err = d.albumService.AlbumExists(ctx, args.Album); err != nil {
		return d.storageFailure(err)
	}

	if !exists {
		if err = d.albumService.CreateAlbum(ctx, args.Album); err != nil {
			return d.storageFailure(err)
		}
	}

	if photos, err = d.photoDirectoryService.ListPhotos(dir); err != nil {
		return d.filesystemFailure(err)
	}

	if err = d.albumService.UploadPhotos(ctx, args.Album, photos); err != nil {
		return d.storageFailure(err)
	}

	slog.Info("upload complete", "album", args.Album, "path", dir, "numPhotos", len(photos))
	return nil
}

func (d Dispatcher) download(ctx context.Context, args arguments.Arguments) error {
	var (
		err    error
		dir    string
		exists bool
		photos []models.Photo
	)

	if dir, err = d.requireParameters(args); err != nil {
		return err
	}

	if exists, err = d.albumService.AlbumExists(ctx, args.Album); err != nil {
		return d.storageFailure(err)
	}

	if !exists {
		d.println(MessageAlbumNotFound)
		return fmt.Errorf("album '%s': %w", args.Album, models.ErrAlbumNotFound)
	}

	albumDir := filepath.Join(dir, args.Album)

	if err = d.photoDirectoryService.EnsureDirectory(albumDir); err != nil {
		return d.filesystemFailure(err)
	}

	if photos, err = d.albumService.DownloadAlbum(ctx, args.Album); err != nil {
		return d.storageFailure(err)
	}

	for _, photo := range photos {
		target := filepath.Join(albumDir, filepath.FromSlash(photo.Key))

		if !isWithinDirectory(albumDir, target) {
			slog.Warn("skipping photo whose key leaves the album directory", "album", args.Album, "key", photo.Key)
			continue
		}

		if err = d.photoDirectoryService.WriteFile(target, photo.Content); err != nil {
			return d.filesystemFailure(err)
		}
	}

	slog.Info("download complete", "album", args.Album, "path", albumDir, "numPhotos", len(photos))
	return nil
}

/*
requireParameters checks the -p and -a parameters shared by upload and
download and returns the absolute directory path.
*/
func (d Dispatcher) requireParameters(args arguments.Arguments) (string, error) {
	if args.Path == "" || args.Album == "" {
		d.println(MessageMissingParameter)
		return "", ErrMissingParameter
	}

	dir, err := filepath.Abs(args.Path)

	if err != nil {
		dir = args.Path
	}

	if !d.photoDirectoryService.IsDirectory(dir) {
		d.println(MessageDirectoryNotFound)
		return "", fmt.Errorf("'%s': %w", dir, ErrDirectoryNotFound)
	}

	return dir, nil
}

func (d Dispatcher) storageFailure(err error) error {
	slog.Error("object storage request failed", "error", err)
	d.printf(MessageStorageFailure+"\n", err)
	return err
}

func (d Dispatcher) filesystemFailure(err error) error {
	slog.Error("filesystem operation failed", "error", err)
	d.printf(MessageFilesystemFailure+"\n", err)
	return err
}

func (d Dispatcher) println(message string) {
	_, _ = fmt.Fprintln(d.output, message)
}

func (d Dispatcher) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.output, format, args...)
}

func isWithinDirectory(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)

	if err != nil || rel == "." || rel == ".." {
		return false
	}

	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
