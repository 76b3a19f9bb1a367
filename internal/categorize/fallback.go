package categorize

import (
	"path/filepath"
	"strings"

	"tidydesk/pkg/types"
)

// Categories used when a file matches nothing more specific.
const (
	CategoryNoExtension = "No Extension"
	CategoryOther       = "Other"
)

// extensionCategories is the fixed lookup table behind the deterministic
// fallback. Keys are lowercase extensions including the dot.
var extensionCategories = map[string]string{
	".jpg": "Images", ".jpeg": "Images", ".png": "Images", ".gif": "Images",
	".pdf": "Documents", ".doc": "Documents", ".docx": "Documents", ".txt": "Documents",
	".mp4": "Videos", ".mov": "Videos", ".avi": "Videos",
	".mp3": "Audio", ".wav": "Audio", ".m4a": "Audio",
	".zip": "Archives", ".rar": "Archives", ".7z": "Archives",
	".py": "Code", ".js": "Code", ".html": "Code", ".css": "Code",
}

// Fallback assigns every file to exactly one category: configured glob rules
// first, then the extension table. Files without an extension land in
// "No Extension", unknown extensions in "Other". This path never fails.
func (c *Categorizer) Fallback(files []string) types.CategoryPlan {
	plan := types.CategoryPlan{}
	for _, file := range files {
		plan.Add(c.fallbackCategory(file), file)
	}
	return plan
}

func (c *Categorizer) fallbackCategory(file string) string {
	for _, rule := range c.rules {
		if rule.matcher.Match(file) {
			return rule.category
		}
	}

	ext := strings.ToLower(filepath.Ext(file))
	// A leading dot is a hidden-file marker, not an extension.
	if ext == "" || ext == strings.ToLower(file) {
		return CategoryNoExtension
	}
	if category, ok := extensionCategories[ext]; ok {
		return category
	}
	return CategoryOther
}
