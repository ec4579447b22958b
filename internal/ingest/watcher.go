package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

type WatchConfig struct {
	Root        string        // drop directory to watch (recursive)
	InitialScan bool          // if true, walk root and emit existing manifests
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// StartWatcher watches a drop directory for manifest files and emits their
// paths once writes have settled. The caller feeds each path to
// Usecase.IngestManifest. Both channels close when ctx is cancelled.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if strings.TrimSpace(cfg.Root) == "" {
		return nil, nil, errors.New("watch root is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	evCh := make(chan string, 64)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if IsHidden(path) && path != root {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && isManifest(path) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	if err := addDir(cfg.Root); err != nil {
		_ = w.Close()
		logger.Error("failed to watch drop directory", "root", cfg.Root, "error", err)
		return nil, nil, err
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer w.Close()

		// pending paths wait out the debounce window before being emitted
		pending := make(map[string]time.Time)
		ticker := time.NewTicker(cfg.Debounce)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) {
					// new subdirectories join the watch set
					if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
						_ = w.Add(ev.Name)
						continue
					}
				}
				if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				if !isManifest(ev.Name) || IsHidden(ev.Name) {
					continue
				}
				pending[ev.Name] = time.Now()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			case now := <-ticker.C:
				for path, seen := range pending {
					if now.Sub(seen) < cfg.Debounce {
						continue
					}
					delete(pending, path)
					select {
					case evCh <- path:
						logger.Debug("manifest detected", "path", path)
					default:
						logger.Warn("watcher channel full, dropping manifest event", "path", path)
					}
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func isManifest(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
