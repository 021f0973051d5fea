package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"image-previewer/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupOldTempFiles(t *testing.T) {
	base := t.TempDir()
	tempDir := filepath.Join(base, "temp")
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "old-dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "old-dir", "a.heic"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "old.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "fresh.jpg"), []byte("x"), 0o644))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(tempDir, "old-dir"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(tempDir, "old.jpg"), old, old))

	svc, err := NewCleanupService(config.NewRoots(base))
	require.NoError(t, err)

	removed, err := svc.CleanupOldTempFiles(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoDirExists(t, filepath.Join(tempDir, "old-dir"))
	assert.NoFileExists(t, filepath.Join(tempDir, "old.jpg"))
	assert.FileExists(t, filepath.Join(tempDir, "fresh.jpg"))
}

func TestCleanupMissingTempDir(t *testing.T) {
	svc, err := NewCleanupService(config.NewRoots(t.TempDir()))
	require.NoError(t, err)

	removed, err := svc.CleanupOldTempFiles(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNewCleanupServiceNeedsTempRoot(t *testing.T) {
	_, err := NewCleanupService(emptyRoots{})
	assert.Error(t, err)
}
