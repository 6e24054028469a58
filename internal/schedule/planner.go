package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Planner resolves user inputs into a window, fetches the airings in it and
// formats them for display.
type Planner struct {
	Source Source
	// Local is the offset used when no timezone is requested or the requested one is unknown.
	Local  Offset
	Now    func() time.Time
	Logger *zap.Logger
}

// NewPlanner constructs a Planner using the wall clock.
func NewPlanner(source Source, local Offset, logger *zap.Logger) (*Planner, error) {
	if source == nil {
		return nil, errors.New("planner requires a source")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{Source: source, Local: local, Now: time.Now, Logger: logger}, nil
}

// Run executes a lookup. Invalid timezone or day tokens fall back to the
// local offset and today respectively; only source failures are returned.
func (p *Planner) Run(ctx context.Context, req Request) (*Result, error) {
	now := p.now()
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tz, err := ResolveTimezone(req.Timezone, p.Local, now)
	if err != nil {
		logger.Warn("invalid timezone, using default timezone",
			zap.String("timezone", req.Timezone),
			zap.String("fallback", tz.Label()),
			zap.Error(err),
		)
	}

	day, err := ParseWeekday(req.Day, now)
	if err != nil {
		logger.Debug("unrecognised day, using today", zap.String("day", req.Day), zap.Stringer("today", day))
	}

	window := ComputeWindow(tz.Offset, day, req.Days, now)
	logger.Debug("schedule window",
		zap.Int64("start", window.Start),
		zap.Int64("end", window.End),
		zap.String("timezone", tz.Label()),
		zap.Stringer("day", day),
	)

	events, err := p.Source.Fetch(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", p.Source.Name(), err)
	}

	return &Result{
		Timezone:    tz,
		Day:         day,
		Window:      window,
		GeneratedAt: now.UTC(),
		Rows:        BuildRows(events, tz, now.Unix()),
	}, nil
}

func (p *Planner) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
