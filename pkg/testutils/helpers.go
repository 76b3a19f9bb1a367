package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateDesktopFixture creates a small desktop directory with one file per
// fallback category plus an extensionless file.
func CreateDesktopFixture(t *testing.T, dir string) {
	t.Helper()
	CreateTestFilesWithContent(t, dir, map[string]string{
		"photo.jpg":   "jpg content",
		"report.txt":  "text content",
		"clip.mp4":    "video content",
		"song.mp3":    "audio content",
		"bundle.zip":  "zip content",
		"script.py":   "print('hi')",
		"notes":       "no extension",
		"mystery.xyz": "unknown extension",
	})
}
