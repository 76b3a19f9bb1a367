package types

import "sort"

// CategoryPlan maps a category name to the ordered list of file names
// assigned to it. A plan is produced fresh per organize invocation, either
// by the LLM or by the fallback heuristic, and discarded after use.
type CategoryPlan map[string][]string

// Add appends a file name to the given category's list.
func (p CategoryPlan) Add(category, file string) {
	p[category] = append(p[category], file)
}

// Categories returns the category names in sorted order.
func (p CategoryPlan) Categories() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileCount returns the total number of files across all categories.
func (p CategoryPlan) FileCount() int {
	n := 0
	for _, files := range p {
		n += len(files)
	}
	return n
}
