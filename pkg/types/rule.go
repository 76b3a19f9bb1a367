package types

// Rule maps a filename glob pattern to a category name. Rules come from the
// user's configuration and take precedence over the built-in extension table
// when the fallback categorizer runs.
type Rule struct {
	Pattern  string `yaml:"pattern"`  // Glob pattern matched against the file name (e.g. "Screenshot*.png").
	Category string `yaml:"category"` // Category the matched files are assigned to.
}
