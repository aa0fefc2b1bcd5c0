package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"operation only", newError("listBuckets", cause), "storage.listBuckets: boom"},
		{"with bucket", newBucketError("createBucket", "album", cause), "storage.createBucket bucket album: boom"},
		{"with object", newObjectError("getObject", "album", "a.jpg", cause), "storage.getObject album/a.jpg: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := newBucketError("listObjects", "missing", ErrBucketNotFound)

	assert.ErrorIs(t, err, ErrBucketNotFound)
	assert.NotErrorIs(t, err, ErrObjectNotFound)

	var storageErr *Error
	assert.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "missing", storageErr.Bucket)
}
