package commands

import (
	"errors"
)

// Messages shown to the user on stdout.
const (
	MessageAlbumListHeader   = "Список альбомов:"
	MessageAlbumNotFound     = "Ошибка! Указанного альбома не существует."
	MessageDirectoryNotFound = "Ошибка! Указанного каталога не существует."
	MessageFilesystemFailure = "Ошибка! Не удалось выполнить операцию с файловой системой: %v"
	MessageMissingParameter  = "Не был передан параметр '-a' или '-p'"
	MessagePhotoListHeader   = "Список фотографий в альбоме \"%s\":"
	MessageStorageFailure    = "Ошибка! Не удалось выполнить запрос к облачному хранилищу: %v"
	MessageWrongCommand      = "Ошибка! Неправильная команда"
)

var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrUnknownCommand    = errors.New("unknown command")
)
