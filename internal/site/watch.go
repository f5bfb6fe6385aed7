package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/learnsite/internal/logger"
)

// DefaultDebounce coalesces bursts of file events into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// WatchOptions tunes Watch.
type WatchOptions struct {
	Debounce time.Duration
	// Ignore lists directories whose changes never trigger a rebuild,
	// typically the build output. Hidden directories are always ignored.
	Ignore []string
	Log    *logger.Logger
}

// Watch calls rebuild whenever a file under dir changes, until ctx is
// done. Events are debounced and rebuilds never overlap. A failed rebuild
// is logged and watching continues.
func Watch(ctx context.Context, dir string, opts WatchOptions, rebuild func(context.Context) error) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	ignored := newIgnoreSet(opts.Ignore)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && ignored.skip(path) {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ignored.skip(event.Name) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// New directories need their own watch.
				if isDir(event.Name) {
					if err := fsw.Add(event.Name); err != nil {
						log.Warn("watching new directory", "path", event.Name, "error", err)
					}
				}
			}
			log.Debug("content changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		case <-timer.C:
			if err := rebuild(ctx); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

type ignoreSet []string

func newIgnoreSet(paths []string) ignoreSet {
	var s ignoreSet
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			s = append(s, abs)
		}
	}
	return s
}

// skip reports whether path is hidden or lies under an ignored directory.
func (s ignoreSet) skip(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range s {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
