package schedule

import "sort"

// BuildRows formats events for display against now, ordered by airing time.
func BuildRows(events []AiringEvent, tz Timezone, now int64) []Row {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]AiringEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AiringAt < sorted[j].AiringAt
	})

	rows := make([]Row, 0, len(sorted))
	for _, ev := range sorted {
		rows = append(rows, Row{
			Title:    ev.Title,
			Episode:  ev.Episode,
			Time:     FormatAiringTime(ev.AiringAt, tz),
			Status:   FormatRelative(ev.AiringAt, now),
			Past:     ev.AiringAt < now,
			AiringAt: ev.AiringAt,
		})
	}
	return rows
}
