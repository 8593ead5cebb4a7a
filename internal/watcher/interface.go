package watcher

import "context"

// Watcher feeds transcript dumps dropped into a directory to a handler.
type Watcher interface {
	// Start handles files already present, then new ones, until ctx is done.
	Start(ctx context.Context) error
	Stop() error
}

// TranscriptHandler converts one transcript dump.
type TranscriptHandler func(ctx context.Context, transcriptPath string) error
