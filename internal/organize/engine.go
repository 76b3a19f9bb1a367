// Package organize drives the scan-categorize-move pipeline against the
// desktop root.
package organize

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tidydesk/internal/categorize"
	"tidydesk/internal/config"
	serr "tidydesk/internal/errors"
	"tidydesk/internal/log"
	"tidydesk/internal/scan"
	"tidydesk/pkg/types"
)

// Engine applies a category plan to the desktop: one directory per
// category, one move per file, collisions and per-file failures handled
// without aborting the batch.
type Engine struct {
	scanner     *scan.Scanner
	categorizer *categorize.Categorizer
	createDirs  bool
	collision   string
	log         *log.Logger
}

// New creates an organization engine.
func New(scanner *scan.Scanner, categorizer *categorize.Categorizer, cfg *config.Config, logger *log.Logger) *Engine {
	return &Engine{
		scanner:     scanner,
		categorizer: categorizer,
		createDirs:  cfg.Settings.CreateDirs,
		collision:   cfg.Settings.Collision,
		log:         logger,
	}
}

// NewWithConfig wires a full engine (scanner and categorizer included) from
// configuration.
func NewWithConfig(cfg *config.Config, logger *log.Logger) (*Engine, error) {
	categorizer, err := categorize.NewFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	scanner := scan.New(cfg.Desktop.Path, logger)
	return New(scanner, categorizer, cfg, logger), nil
}

// Organize lists the desktop's top-level files, obtains a category plan,
// and either previews it (dryRun) or moves every planned file. Per-file
// problems are recorded as skips in the report; only scan failures surface
// as errors.
func (e *Engine) Organize(ctx context.Context, dryRun bool) (*types.Report, error) {
	files, err := e.scanner.Files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &types.Report{NoFiles: true}, nil
	}

	plan := e.categorizer.Analyze(ctx, files)

	if dryRun {
		e.log.Infof("dry run: planned %d files into %d categories", plan.FileCount(), len(plan))
		return &types.Report{Plan: plan, DryRun: true}, nil
	}

	return e.Apply(plan), nil
}

// Apply executes a category plan against the desktop root. Every file in
// the plan ends up either moved or skipped with a reason.
func (e *Engine) Apply(plan types.CategoryPlan) *types.Report {
	report := &types.Report{Plan: plan}

	for _, category := range plan.Categories() {
		for _, name := range plan[category] {
			e.moveOne(report, category, name)
		}
	}

	e.log.WithField("moved", report.MovedCount()).
		WithField("skipped", len(report.Skipped)).
		Infof("organization complete")
	return report
}

// moveOne moves a single planned file into its category folder, recording
// the outcome on the report. The desktop may have changed since the scan,
// so a vanished source is a skip, not an error.
func (e *Engine) moveOne(report *types.Report, category, name string) {
	src := filepath.Join(e.scanner.Root(), name)
	if _, err := os.Stat(src); err != nil {
		report.AddSkipped(name, "not found")
		return
	}

	dir := filepath.Join(e.scanner.Root(), category)
	if e.createDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			report.AddSkipped(name, err.Error())
			return
		}
	}

	dest, err := e.resolveCollision(filepath.Join(dir, name))
	if err != nil {
		report.AddSkipped(name, err.Error())
		return
	}
	if dest == "" {
		report.AddSkipped(name, "destination exists")
		return
	}

	if err := moveFile(src, dest); err != nil {
		e.log.WithError(err).WithField("file", name).Warnf("move failed")
		report.AddSkipped(name, err.Error())
		return
	}

	e.log.Debugf("moved %s -> %s", src, dest)
	report.AddMoved(category, name)
}

// resolveCollision returns the final destination path, applying the
// configured strategy when a file of the same name already exists. An empty
// path signals skip.
func (e *Engine) resolveCollision(dest string) (string, error) {
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return dest, nil
	} else if err != nil {
		return "", fmt.Errorf("error checking destination %s: %w", dest, err)
	}

	switch e.collision {
	case config.CollisionTimestamp:
		return timestampName(dest), nil
	case config.CollisionSkip:
		return "", nil
	case config.CollisionOverwrite:
		return dest, nil
	default:
		return "", fmt.Errorf("unknown collision strategy: %s", e.collision)
	}
}

// timestampName inserts a YYYYMMDD_HHMMSS timestamp between the base name
// and the extension.
func timestampName(dest string) string {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)
	return fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
}

// moveFile renames src to dest, falling back to copy-and-delete when the
// rename fails (typically a cross-volume move).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	if err := copyFile(src, dest); err != nil {
		return serr.NewFileError("move failed", src, serr.MoveFailed, err)
	}
	if err := os.Remove(src); err != nil {
		return serr.NewFileError("move failed", src, serr.MoveFailed, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
