package types

// SkippedFile records a file that could not be moved and why.
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report holds the outcome of one organize invocation. For a dry run only
// Plan and DryRun are set; for a real run Moved and Skipped describe what
// happened to each planned file.
type Report struct {
	Plan    CategoryPlan        `json:"plan,omitempty"`
	DryRun  bool                `json:"dry_run,omitempty"`
	NoFiles bool                `json:"no_files,omitempty"`
	Moved   map[string][]string `json:"moved,omitempty"`
	Skipped []SkippedFile       `json:"skipped,omitempty"`
}

// AddMoved records a successful move into category.
func (r *Report) AddMoved(category, name string) {
	if r.Moved == nil {
		r.Moved = make(map[string][]string)
	}
	r.Moved[category] = append(r.Moved[category], name)
}

// AddSkipped records a file that was not moved.
func (r *Report) AddSkipped(name, reason string) {
	r.Skipped = append(r.Skipped, SkippedFile{Name: name, Reason: reason})
}

// MovedCount returns the total number of files moved.
func (r *Report) MovedCount() int {
	n := 0
	for _, files := range r.Moved {
		n += len(files)
	}
	return n
}
