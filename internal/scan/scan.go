// Package scan lists the desktop root. Scans are read-only and recompute
// everything from the filesystem on each call.
package scan

import (
	"os"
	"sort"

	serr "tidydesk/internal/errors"
	"tidydesk/internal/log"
	"tidydesk/pkg/types"
)

// Scanner lists entries directly under the desktop root.
type Scanner struct {
	root string
	log  *log.Logger
}

// New creates a Scanner for the given desktop root.
func New(root string, logger *log.Logger) *Scanner {
	return &Scanner{root: root, log: logger}
}

// Root returns the desktop root path.
func (s *Scanner) Root() string {
	return s.root
}

// Status partitions the desktop's entries into folders and files, both
// sorted lexicographically. Dotfiles are skipped unless includeHidden is
// set. A missing desktop root yields a PathNotFound error.
func (s *Scanner) Status(includeHidden bool) (*types.DesktopStatus, error) {
	entries, err := s.list()
	if err != nil {
		return nil, err
	}

	status := &types.DesktopStatus{}
	for _, entry := range entries {
		if !includeHidden && entry.IsHidden() {
			continue
		}
		if entry.Kind == types.KindDirectory {
			status.Folders = append(status.Folders, entry.Name)
		} else {
			status.Files = append(status.Files, entry.Name)
		}
	}

	sort.Strings(status.Folders)
	sort.Strings(status.Files)

	s.log.WithField("directory", s.root).
		Debugf("scanned %d folders and %d files", len(status.Folders), len(status.Files))
	return status, nil
}

// Files returns the names of regular files directly under the desktop root,
// sorted. Directories and hidden files are excluded; this is the entry set
// the organizer works from.
func (s *Scanner) Files() ([]string, error) {
	entries, err := s.list()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.Kind != types.KindFile || entry.IsHidden() {
			continue
		}
		files = append(files, entry.Name)
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) list() ([]types.DesktopEntry, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("desktop path not found", s.root, serr.PathNotFound, err)
		}
		return nil, serr.NewFileError("failed to read desktop", s.root, serr.FileAccessDenied, err)
	}

	entries := make([]types.DesktopEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		kind := types.KindFile
		if de.IsDir() {
			kind = types.KindDirectory
		}
		entries = append(entries, types.DesktopEntry{Name: de.Name(), Kind: kind})
	}
	return entries, nil
}
