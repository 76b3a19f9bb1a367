// Package watch runs the organizer automatically when the desktop changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"tidydesk/internal/log"
	"tidydesk/internal/organize"
)

// Watcher monitors the desktop root with fsnotify and triggers an organize
// pass once events settle for the configured quiet period.
type Watcher struct {
	root   string
	settle time.Duration
	engine *organize.Engine
	dryRun bool
	log    *log.Logger

	fsWatcher *fsnotify.Watcher
}

// New creates a desktop watcher. The settle duration debounces bursts of
// events (a download writing in chunks, a batch of screenshots) into one
// organize pass. With dryRun set each pass only logs the plan it would
// have applied.
func New(root string, settle time.Duration, engine *organize.Engine, dryRun bool, logger *log.Logger) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(root); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	return &Watcher{
		root:      root,
		settle:    settle,
		engine:    engine,
		dryRun:    dryRun,
		log:       logger,
		fsWatcher: fsWatcher,
	}, nil
}

// Run processes events until the context is cancelled. Each batch of
// create/rename events schedules an organize pass after the settle period;
// pass failures are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()

	w.log.WithField("directory", w.root).Infof("watching desktop")

	// The timer stays parked until the first interesting event.
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.WithField("file", event.Name).Debugf("change detected")
			timer.Reset(w.settle)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warnf("watch error")

		case <-timer.C:
			report, err := w.engine.Organize(ctx, w.dryRun)
			if err != nil {
				w.log.WithError(err).Errorf("auto-organize failed")
				continue
			}
			switch {
			case report.NoFiles:
			case report.DryRun:
				for _, category := range report.Plan.Categories() {
					w.log.WithField("category", category).
						WithField("files", report.Plan[category]).
						Infof("dry run, would organize")
				}
			default:
				w.log.WithField("moved", report.MovedCount()).
					WithField("skipped", len(report.Skipped)).
					Infof("auto-organized desktop")
			}
		}
	}
}
