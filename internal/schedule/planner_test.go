package schedule

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"animesh/internal/anilist"
)

type fakeAiringClient struct {
	schedules  []anilist.AiringSchedule
	err        error
	start, end int64
	calls      int
}

func (f *fakeAiringClient) AiringSchedules(ctx context.Context, start, end int64) ([]anilist.AiringSchedule, error) {
	f.calls++
	f.start, f.end = start, end
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules, nil
}

func ptr[T any](v T) *T { return &v }

func airing(at int64, episode *int, english, romaji *string) anilist.AiringSchedule {
	return anilist.AiringSchedule{
		AiringAt: ptr(at),
		Episode:  episode,
		Media:    &anilist.Media{Title: &anilist.Title{English: english, Romaji: romaji}},
	}
}

func fixedPlanner(source Source, logger *zap.Logger) *Planner {
	return &Planner{
		Source: source,
		Local:  Offset(2 * hour),
		Now:    func() time.Time { return refNow },
		Logger: logger,
	}
}

func TestPlannerRunBuildsRows(t *testing.T) {
	now := refNow.Unix()
	client := &fakeAiringClient{schedules: []anilist.AiringSchedule{
		airing(now+3*3600, ptr(7), ptr("Frieren: Beyond Journey's End"), ptr("Sousou no Frieren")),
		airing(now-3600, ptr(12), nil, ptr("Kusuriya no Hitorigoto")),
		airing(now+28*3600, nil, nil, nil),
	}}

	planner := fixedPlanner(AniListSource{Client: client}, zap.NewNop())
	res, err := planner.Run(context.Background(), Request{Day: "monday", Days: 2, Timezone: "UTC"})
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, now, client.start)
	assert.Equal(t, now+2*86400, client.end)

	assert.Equal(t, "UTC", res.Timezone.Label())
	assert.Equal(t, Monday, res.Day)
	require.Len(t, res.Rows, 3)

	assert.Equal(t, "Kusuriya no Hitorigoto", res.Rows[0].Title)
	assert.True(t, res.Rows[0].Past)
	assert.Equal(t, "1h ago", res.Rows[0].Status)

	assert.Equal(t, "Frieren: Beyond Journey's End", res.Rows[1].Title)
	assert.Equal(t, 7, res.Rows[1].Episode)
	assert.Equal(t, "in 3h", res.Rows[1].Status)
	assert.Equal(t, "Mon 19 Oct 23:00", res.Rows[1].Time)
	assert.False(t, res.Rows[1].Past)

	assert.Equal(t, UnknownTitle, res.Rows[2].Title)
	assert.Equal(t, 0, res.Rows[2].Episode)
	assert.Equal(t, "in 1d", res.Rows[2].Status)
}

func TestPlannerRunWarnsOnUnknownTimezone(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	planner := fixedPlanner(AniListSource{Client: &fakeAiringClient{}}, zap.New(core))

	res, err := planner.Run(context.Background(), Request{Days: 1, Timezone: "Narnia", Day: "blursday"})
	require.NoError(t, err)

	assert.Equal(t, Offset(2*hour), res.Timezone.Offset)
	assert.Equal(t, "UTC+02:00", res.Timezone.Label())
	assert.Equal(t, Monday, res.Day)
	assert.Empty(t, res.Rows)

	entries := logs.FilterMessage("invalid timezone, using default timezone").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Narnia", entries[0].ContextMap()["timezone"])
	// Unknown days fall back silently.
	assert.Equal(t, 1, logs.Len())
}

func TestPlannerRunPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	planner := fixedPlanner(AniListSource{Client: &fakeAiringClient{err: boom}}, nil)

	res, err := planner.Run(context.Background(), Request{Days: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch from anilist")
	assert.Nil(t, res)
}

func TestPlannerZeroWidthWindowSkipsQuery(t *testing.T) {
	client := &fakeAiringClient{}
	planner := fixedPlanner(AniListSource{Client: client}, nil)

	res, err := planner.Run(context.Background(), Request{Days: 0})
	require.NoError(t, err)
	assert.Equal(t, res.Window.Start, res.Window.End)
	assert.Zero(t, client.calls)
	assert.Empty(t, res.Rows)
}

func TestNewPlannerRequiresSource(t *testing.T) {
	_, err := NewPlanner(nil, 0, nil)
	require.Error(t, err)

	p, err := NewPlanner(AniListSource{}, Offset(hour), nil)
	require.NoError(t, err)
	assert.NotNil(t, p.Logger)
	assert.NotNil(t, p.Now)
}

func TestFileSourceFiltersByWindow(t *testing.T) {
	source, err := NewFileSource(filepath.Join("testdata", "airing_page.json"))
	require.NoError(t, err)

	planner := fixedPlanner(source, nil)
	res, err := planner.Run(context.Background(), Request{Day: "mon", Days: 2, Timezone: "IST"})
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Frieren: Beyond Journey's End", res.Rows[0].Title)
	assert.Equal(t, "Tue 20 Oct 04:30", res.Rows[0].Time)
	assert.Equal(t, UnknownTitle, res.Rows[1].Title)
	assert.Equal(t, 0, res.Rows[1].Episode)
}

func TestNewFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join("testdata", "missing.json"))
	require.Error(t, err)

	_, err = NewFileSource("")
	require.Error(t, err)
}

func TestPickTitle(t *testing.T) {
	assert.Equal(t, UnknownTitle, pickTitle(nil))
	assert.Equal(t, UnknownTitle, pickTitle(&anilist.Media{}))
	assert.Equal(t, "Romaji", pickTitle(&anilist.Media{Title: &anilist.Title{English: ptr("  "), Romaji: ptr("Romaji")}}))
	assert.Equal(t, "English", pickTitle(&anilist.Media{Title: &anilist.Title{English: ptr("English"), Romaji: ptr("Romaji")}}))
}
