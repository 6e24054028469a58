package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"

	"animesh/internal/anilist"
)

// Source provides airing events inside a window.
type Source interface {
	Name() string
	Fetch(ctx context.Context, w Window) ([]AiringEvent, error)
}

// FileSource serves events from a saved AniList response body.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource reading the given file.
func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("file source requires a path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}
	return &FileSource{path: path}, nil
}

// Name returns the source name.
func (s *FileSource) Name() string { return "file:" + s.path }

// Fetch reads the file and keeps the events inside w.
func (s *FileSource) Fetch(ctx context.Context, w Window) ([]AiringEvent, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	page, err := anilist.ParseAiringPage(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	var filtered []AiringEvent
	for _, ev := range decodeAiringSchedules(page.AiringSchedules) {
		if w.Contains(ev.AiringAt) {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}
