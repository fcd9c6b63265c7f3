package prompts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
)

type implStore struct {
	path    string
	logger  logger.Logger
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	current string
}

func (s *implStore) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Watch consumes fsnotify events for the template file until ctx is
// cancelled. A failed reload keeps the previous template.
func (s *implStore) Watch(ctx context.Context) error {
	s.logger.Info(ctx, "Prompt template watcher started: %s", s.path)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Prompt template watcher stopped")
			return ctx.Err()

		case event, ok := <-s.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Small delay so the writer finishes before we read
			time.Sleep(100 * time.Millisecond)

			if err := s.reload(); err != nil {
				s.logger.Warn(ctx, "Failed to reload prompt template: %v", err)
				continue
			}
			s.logger.Info(ctx, "Prompt template reloaded: %s", s.path)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (s *implStore) Stop() error {
	return s.watcher.Close()
}

func (s *implStore) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = strings.TrimSpace(string(data))
	s.mu.Unlock()
	return nil
}
