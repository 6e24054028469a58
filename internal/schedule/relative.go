package schedule

import (
	"fmt"
	"time"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60

	airingTimeLayout = "Mon 02 Jan 15:04"
)

// FormatRelative describes airingAt relative to now using the largest
// non-zero unit (days, hours, minutes). Values are floored; anything under a
// minute reads "just now" in the past and "now" otherwise.
func FormatRelative(airingAt, now int64) string {
	diff := airingAt - now
	if diff < 0 {
		mag := -diff
		switch {
		case mag >= secondsPerDay:
			return fmt.Sprintf("%dd ago", mag/secondsPerDay)
		case mag >= secondsPerHour:
			return fmt.Sprintf("%dh ago", mag/secondsPerHour)
		case mag >= secondsPerMinute:
			return fmt.Sprintf("%dm ago", mag/secondsPerMinute)
		default:
			return "just now"
		}
	}

	switch {
	case diff >= secondsPerDay:
		return fmt.Sprintf("in %dd", diff/secondsPerDay)
	case diff >= secondsPerHour:
		return fmt.Sprintf("in %dh", diff/secondsPerHour)
	case diff >= secondsPerMinute:
		return fmt.Sprintf("in %dm", diff/secondsPerMinute)
	default:
		return "now"
	}
}

// FormatAiringTime renders airingAt as a wall-clock time in tz.
func FormatAiringTime(airingAt int64, tz Timezone) string {
	return time.Unix(airingAt, 0).In(tz.Location()).Format(airingTimeLayout)
}
