package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	serr "tidydesk/internal/errors"
	"tidydesk/internal/log"
	"tidydesk/internal/scan"
	"tidydesk/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	desktop := t.TempDir()
	testutils.CreateTestFilesWithContent(t, desktop, map[string]string{
		"b.txt":      "b",
		"a.jpg":      "a",
		".hidden":    "h",
		"Screenshot": "s",
	})
	require.NoError(t, os.Mkdir(filepath.Join(desktop, "Projects"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(desktop, ".cache"), 0755))

	scanner := scan.New(desktop, log.NewNop())

	t.Run("hidden excluded by default", func(t *testing.T) {
		status, err := scanner.Status(false)
		require.NoError(t, err)

		assert.Equal(t, []string{"Projects"}, status.Folders)
		assert.Equal(t, []string{"Screenshot", "a.jpg", "b.txt"}, status.Files)
		assert.Equal(t, 4, status.Total())
	})

	t.Run("hidden included on request", func(t *testing.T) {
		status, err := scanner.Status(true)
		require.NoError(t, err)

		assert.Equal(t, []string{".cache", "Projects"}, status.Folders)
		assert.Equal(t, []string{".hidden", "Screenshot", "a.jpg", "b.txt"}, status.Files)
	})
}

func TestStatusMissingRoot(t *testing.T) {
	scanner := scan.New(filepath.Join(t.TempDir(), "no-such-desktop"), log.NewNop())

	_, err := scanner.Status(false)
	require.Error(t, err)
	assert.True(t, serr.IsPathNotFound(err))
}

func TestFiles(t *testing.T) {
	desktop := t.TempDir()
	testutils.CreateTestFilesWithContent(t, desktop, map[string]string{
		"notes":   "n",
		"a.jpg":   "a",
		".hushed": "h",
	})
	require.NoError(t, os.Mkdir(filepath.Join(desktop, "Documents"), 0755))

	scanner := scan.New(desktop, log.NewNop())
	files, err := scanner.Files()
	require.NoError(t, err)

	// Directories and dotfiles never make it into the organize entry set
	assert.Equal(t, []string{"a.jpg", "notes"}, files)
}

func TestFilesEmptyDesktop(t *testing.T) {
	scanner := scan.New(t.TempDir(), log.NewNop())
	files, err := scanner.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}
