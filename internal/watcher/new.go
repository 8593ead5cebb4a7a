package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher for transcript dumps (.json) dropped into inputDir.
// At most maxConcurrent handlers run at once.
func New(inputDir string, handler TranscriptHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	return newWatcher(inputDir, handler, log, maxConcurrent, defaultSettleDelay)
}

func newWatcher(inputDir string, handler TranscriptHandler, log logger.Logger, maxConcurrent int, settle time.Duration) (*implWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settle:        settle,
		inFlight:      make(map[string]struct{}),
	}, nil
}
