package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinioCredentials_ConfiguredKeys(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "from-env")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "from-env-secret")

	value, err := minioCredentials(MinioStoreConfig{
		AccessKeyID:     "configured",
		SecretAccessKey: "configured-secret",
	}).Get()

	require.NoError(t, err)
	assert.Equal(t, "configured", value.AccessKeyID)
	assert.Equal(t, "configured-secret", value.SecretAccessKey)
}

func TestMinioCredentials_FallsBackToEnvironment(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "from-env")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "from-env-secret")

	value, err := minioCredentials(MinioStoreConfig{}).Get()

	require.NoError(t, err)
	assert.Equal(t, "from-env", value.AccessKeyID)
	assert.Equal(t, "from-env-secret", value.SecretAccessKey)
}

func TestMinioCredentials_FallsBackToSharedCredentialsFile(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_ACCESS_KEY", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_SECRET_KEY", "")
	t.Setenv("AWS_PROFILE", "")

	path := filepath.Join(t.TempDir(), "credentials")
	require.NoError(t, os.WriteFile(path, []byte("[default]\naws_access_key_id = from-file\naws_secret_access_key = from-file-secret\n"), 0o600))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", path)

	value, err := minioCredentials(MinioStoreConfig{}).Get()

	require.NoError(t, err)
	assert.Equal(t, "from-file", value.AccessKeyID)
	assert.Equal(t, "from-file-secret", value.SecretAccessKey)
}
