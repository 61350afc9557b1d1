package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/parser"
	"github.com/c360studio/reqtrace/trace"
)

func newWatchCommand(app *App) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Revalidate cross-references whenever documents change",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := newDocumentWatcher(app.Config.Project.Dir, debounce, app.Logger)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s for document changes (Ctrl-C to stop)\n", app.Config.Project.Dir)

			// Validate once up front so the first report doesn't wait for
			// a change.
			revalidate(app, out)

			return w.Run(ctx, func(paths []string) {
				app.Logger.Debug("documents changed", slog.Int("count", len(paths)))
				fmt.Fprintf(out, "\nChange detected (%d file(s)), revalidating...\n", len(paths))
				revalidate(app, out)
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "How long to wait for more changes before revalidating")
	return cmd
}

func revalidate(app *App, out io.Writer) {
	project, err := parser.NewLoader(app.Logger).LoadProject(app.Config.Project.Dir)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "Load failed: %v\n", err)
		return
	}

	validator := trace.NewValidator(project.Requirements, project.Specifications)

	for _, link := range validator.MissingRequirementLinks() {
		color.New(color.FgHiYellow).Fprintf(out,
			"  warning: Specification %s references non-existent requirement %s\n",
			link.SpecID, link.RequirementID)
	}

	result := validator.ValidateCrossReferences()
	hard := 0
	for _, e := range result.Errors {
		if strings.Contains(e, "references non-existent requirement") {
			continue
		}
		hard++
		color.New(color.FgRed).Fprintf(out, "  error: %s\n", e)
	}

	if hard == 0 {
		color.New(color.FgGreen).Fprintf(out, "OK: %d requirements, %d specifications\n",
			len(project.Requirements), len(project.Specifications))
	}
}

// documentWatcher watches a project directory tree and reports batches of
// changed YAML documents after a debounce window.
type documentWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]bool
}

func newDocumentWatcher(root string, debounce time.Duration, logger *slog.Logger) (*documentWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &documentWatcher{
		watcher:  fsw,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]bool),
	}

	// fsnotify is not recursive; register every directory in the tree.
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	return w, nil
}

func (w *documentWatcher) Close() error {
	return w.watcher.Close()
}

// Run blocks until ctx is done, invoking onChange with the batch of
// changed document paths after each quiet period.
func (w *documentWatcher) Run(ctx context.Context, onChange func(paths []string)) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories need registering to keep the tree covered.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							slog.String("path", event.Name), slog.String("error", err.Error()))
					}
					continue
				}
			}
			if filepath.Ext(event.Name) != ".yaml" {
				continue
			}

			w.pendingMu.Lock()
			w.pending[event.Name] = true
			w.pendingMu.Unlock()
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.String("error", err.Error()))

		case <-timer.C:
			w.pendingMu.Lock()
			paths := make([]string, 0, len(w.pending))
			for p := range w.pending {
				paths = append(paths, p)
			}
			w.pending = make(map[string]bool)
			w.pendingMu.Unlock()

			if len(paths) > 0 {
				onChange(paths)
			}
		}
	}
}
