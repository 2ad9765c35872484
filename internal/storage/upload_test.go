package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStore_Save(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("pothole.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+_pothole\.jpg$`), name)

	content, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestUploadStore_SaveStripsPath(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.True(t, strings.HasSuffix(name, "_passwd"))

	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.NoError(t, err, "file must land inside the uploads dir")
}

func TestNewUploadStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewUploadStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
