package models

import (
	"fmt"
)

var (
	ErrAlbumNotFound = fmt.Errorf("album not found")
)

/*
Album is a named collection of photos. Every album lives in its own
bucket, so the album name is also the bucket name.
*/
type Album struct {
	Name string
}
