package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPlan(t *testing.T) {
	plan := CategoryPlan{}
	plan.Add("Images", "photo.jpg")
	plan.Add("Images", "logo.png")
	plan.Add("Documents", "report.txt")

	assert.Equal(t, []string{"Documents", "Images"}, plan.Categories())
	assert.Equal(t, 3, plan.FileCount())
	assert.Equal(t, []string{"photo.jpg", "logo.png"}, plan["Images"])
}

func TestReportAccounting(t *testing.T) {
	report := &Report{}
	report.AddMoved("Images", "photo.jpg")
	report.AddMoved("Images", "logo.png")
	report.AddSkipped("ghost.jpg", "not found")

	assert.Equal(t, 2, report.MovedCount())
	assert.Len(t, report.Skipped, 1)
	assert.Equal(t, "ghost.jpg", report.Skipped[0].Name)
}
