package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       TranscriptHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settle        time.Duration
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start processes transcript files already in the input directory, then
// monitors it for new ones until ctx is canceled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	if err := w.scanExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Failed to scan %s: %v", w.inputDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isTranscriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				// ctx is done; the next iteration drains running handlers.
				continue
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isTranscriptFile(e.Name()) {
			files = append(files, filepath.Join(w.inputDir, e.Name()))
		}
	}
	sort.Strings(files)

	for _, f := range files {
		w.logger.Info(ctx, "Found pending transcript: %s", f)
		if err := w.dispatch(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// dispatch runs the handler for path once a semaphore slot is free. A path
// already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if _, busy := w.inFlight[path]; busy {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = struct{}{}
	w.mu.Unlock()

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.release(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.release(path)

		// Small delay to ensure file is fully written
		select {
		case <-time.After(w.settle):
		case <-ctx.Done():
			return
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

func isTranscriptFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
