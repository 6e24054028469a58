package schedule

import (
	"context"
	"errors"

	"animesh/internal/anilist"
)

// AiringClient captures the ability to list airings in a unix time range.
type AiringClient interface {
	AiringSchedules(ctx context.Context, start, end int64) ([]anilist.AiringSchedule, error)
}

// AniListSource fetches events from the AniList GraphQL API.
type AniListSource struct {
	Client AiringClient
}

// Name returns the source name.
func (s AniListSource) Name() string { return "anilist" }

// Fetch queries the API for airings inside w.
func (s AniListSource) Fetch(ctx context.Context, w Window) ([]AiringEvent, error) {
	if s.Client == nil {
		return nil, errors.New("anilist source has no client")
	}
	if w.End <= w.Start {
		return nil, nil
	}
	raws, err := s.Client.AiringSchedules(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return decodeAiringSchedules(raws), nil
}
