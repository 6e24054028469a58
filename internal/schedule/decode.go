package schedule

import (
	"strings"

	"animesh/internal/anilist"
)

// decodeAiringSchedules converts API records into events, substituting
// defaults for missing fields instead of dropping the record.
func decodeAiringSchedules(raws []anilist.AiringSchedule) []AiringEvent {
	events := make([]AiringEvent, 0, len(raws))
	for _, r := range raws {
		ev := AiringEvent{Title: pickTitle(r.Media)}
		if r.Episode != nil && *r.Episode >= 0 {
			ev.Episode = *r.Episode
		}
		if r.AiringAt != nil {
			ev.AiringAt = *r.AiringAt
		}
		events = append(events, ev)
	}
	return events
}

func pickTitle(m *anilist.Media) string {
	if m == nil || m.Title == nil {
		return UnknownTitle
	}
	for _, candidate := range []*string{m.Title.English, m.Title.Romaji} {
		if candidate == nil {
			continue
		}
		if title := strings.TrimSpace(*candidate); title != "" {
			return title
		}
	}
	return UnknownTitle
}
