package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adampresley/cloudphoto/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type PhotoDirectoryServicer interface {
	EnsureDirectory(path string) error
	IsDirectory(path string) bool
	ListPhotos(dir string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

type PhotoDirectoryServiceConfig struct {
	FS billy.Filesystem
}

/*
PhotoDirectoryService works with photos in local directories. All access
goes through a billy filesystem, which is the OS filesystem in the CLI and
an in-memory one in tests.
*/
type PhotoDirectoryService struct {
	fs billy.Filesystem
}

func NewPhotoDirectoryService(config PhotoDirectoryServiceConfig) PhotoDirectoryService {
	return PhotoDirectoryService{
		fs: config.FS,
	}
}

func (s PhotoDirectoryService) EnsureDirectory(path string) error {
	if err := s.fs.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("error creating directory '%s': %w", path, err)
	}

	return nil
}

func (s PhotoDirectoryService) IsDirectory(path string) bool {
	info, err := s.fs.Stat(path)

	if err != nil {
		return false
	}

	return info.IsDir()
}

/*
ListPhotos returns the full paths of the photos directly inside dir. Sub
directories are not descended into.
*/
func (s PhotoDirectoryService) ListPhotos(dir string) ([]string, error) {
	var (
		err     error
		info    os.FileInfo
		entries []os.FileInfo
	)

	if info, err = s.fs.Stat(dir); err != nil {
		return nil, fmt.Errorf("error reading directory '%s': %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("error reading directory '%s': not a directory", dir)
	}

	if entries, err = s.fs.ReadDir(dir); err != nil {
		return nil, fmt.Errorf("error reading directory '%s': %w", dir, err)
	}

	result := []string{}

	for _, entry := range entries {
		if !entry.Mode().IsRegular() || !models.IsPhotoFileName(entry.Name()) {
			continue
		}

		result = append(result, s.fs.Join(dir, entry.Name()))
	}

	return result, nil
}

func (s PhotoDirectoryService) ReadFile(path string) ([]byte, error) {
	b, err := util.ReadFile(s.fs, path)

	if err != nil {
		return nil, fmt.Errorf("error reading file '%s': %w", path, err)
	}

	return b, nil
}

func (s PhotoDirectoryService) WriteFile(path string, data []byte) error {
	if err := s.EnsureDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	if err := util.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("error writing file '%s': %w", path, err)
	}

	return nil
}
