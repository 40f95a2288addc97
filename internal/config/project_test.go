// ABOUTME: Tests for project .dreamdecoder marker detection
// ABOUTME: Validates directory walking and config path resolution
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()

	projectRoot := filepath.Join(tmpDir, "project")
	subDir := filepath.Join(projectRoot, "src", "deep", "nested")
	require.NoError(t, os.MkdirAll(subDir, 0755)) //nolint:gosec // Test directory permissions

	marker := filepath.Join(projectRoot, MarkerFile)
	require.NoError(t, os.WriteFile(marker, []byte("log_level = \"debug\"\n"), 0644)) //nolint:gosec // Test file permissions

	t.Run("finds project root from nested directory", func(t *testing.T) {
		root, err := FindProjectRoot(subDir)
		require.NoError(t, err)
		assert.Equal(t, projectRoot, root)
	})

	t.Run("returns empty when no marker found", func(t *testing.T) {
		otherDir := filepath.Join(tmpDir, "other")
		require.NoError(t, os.MkdirAll(otherDir, 0755)) //nolint:gosec // Test directory permissions

		root, err := FindProjectRoot(otherDir)
		require.NoError(t, err)
		assert.Empty(t, root)
	})

	t.Run("resolves marker as config path", func(t *testing.T) {
		path, err := ResolvePath(subDir)
		require.NoError(t, err)
		assert.Equal(t, marker, path)
	})

	t.Run("falls back to user config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		path, err := ResolvePath(filepath.Join(tmpDir, "other"))
		require.NoError(t, err)
		assert.Equal(t, "/custom/config/dreamdecoder/config.toml", path)
	})
}
