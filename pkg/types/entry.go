package types

import "strings"

// EntryKind distinguishes files from directories on the desktop.
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// DesktopEntry is a single item found directly under the desktop root.
// Entries are recomputed on every scan and never persisted.
type DesktopEntry struct {
	Name string    `json:"name"`
	Kind EntryKind `json:"kind"`
}

// IsHidden reports whether the entry is a dotfile.
func (e DesktopEntry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// DesktopStatus is the result of an inventory scan: folder and file names
// directly under the desktop root, each sorted lexicographically.
type DesktopStatus struct {
	Folders []string `json:"folders"`
	Files   []string `json:"files"`
}

// Total returns the number of listed items.
func (s *DesktopStatus) Total() int {
	return len(s.Folders) + len(s.Files)
}
