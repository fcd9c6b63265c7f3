package prompts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
)

// New creates a Store watching the template file at path. Pass an empty path
// for a no-op store whose Current() is always empty.
func New(path string, log logger.Logger) (Store, error) {
	if path == "" {
		return &noopStore{}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the parent directory: editors replace files on save, which would
	// otherwise drop the watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	s := &implStore{
		path:    path,
		logger:  log,
		watcher: watcher,
	}

	if err := s.reload(); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("load template: %w", err)
	}

	return s, nil
}

type noopStore struct{}

func (n *noopStore) Current() string { return "" }

func (n *noopStore) Watch(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (n *noopStore) Stop() error { return nil }
