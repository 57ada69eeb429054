package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/chores/internal/config"
)

// SetupTestDir creates a temporary directory with the .chores directory
// structure for testing and returns its path.
// The directory is automatically cleaned up when the test completes.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, config.Dir)
	for _, d := range []string{dir, filepath.Join(dir, "scenarios"), filepath.Join(dir, "runs")} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}

	// A pass limit keeps a misconfigured test run from spinning forever.
	configContent := `limits:
  time_budget_minutes: 0
  max_passes: 50
log_level: error
`
	require.NoError(t, os.WriteFile(config.ConfigPath(tmpDir), []byte(configContent), 0644))

	return tmpDir
}

// ChdirTemp changes into a fresh temp directory for the duration of the test
// and returns its path.
func ChdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	Chdir(t, tmpDir)
	return tmpDir
}

// Chdir changes into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(originalDir) })
}

// WriteTestFile writes content to a file in the test directory.
// Creates parent directories as needed.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()
	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, content, 0644))
}
