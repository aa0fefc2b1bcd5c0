package models

import (
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/slices"
)

var (
	PhotoExtensions = []string{".jpg", ".jpeg"}
)

type Photo struct {
	Album   string
	Key     string
	Content []byte
}

// IsPhotoFileName reports whether name carries one of the photo extensions.
func IsPhotoFileName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.IsInSlice(ext, PhotoExtensions)
}
