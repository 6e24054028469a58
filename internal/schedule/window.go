package schedule

import "time"

const secondsPerDay = 86400

// Window is the half-open UTC range [Start, End) of unix seconds queried for airings.
type Window struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ComputeWindow anchors a window of days length at now, shifted forward to
// target when that weekday is still ahead in the local week. A target that
// is today or already past keeps the window at now; it does not roll over
// to the following week.
func ComputeWindow(offset Offset, target Weekday, days uint32, now time.Time) Window {
	local := now.In(time.FixedZone("", int(offset)))
	current := WeekdayOf(local)

	var diff int64
	if target > current {
		diff = int64(target - current)
	}

	start := local.Unix() + diff*secondsPerDay
	return Window{Start: start, End: start + int64(days)*secondsPerDay}
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// Days returns the window length in whole days.
func (w Window) Days() int64 {
	return (w.End - w.Start) / secondsPerDay
}
