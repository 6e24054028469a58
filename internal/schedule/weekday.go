package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownWeekday is reported when a day token cannot be parsed.
var ErrUnknownWeekday = errors.New("unknown weekday")

// Weekday counts days from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// WeekdayOf returns the Monday-based weekday of t in t's location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

var weekdayTokens = map[string]Weekday{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"tues":      Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"thur":      Thursday,
	"thurs":     Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// ParseWeekday parses a full or abbreviated English weekday name. An empty
// token yields today's weekday in UTC; so does an unparseable one, together
// with an error wrapping ErrUnknownWeekday.
func ParseWeekday(token string, now time.Time) (Weekday, error) {
	today := WeekdayOf(now.UTC())
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return today, nil
	}
	if d, ok := weekdayTokens[token]; ok {
		return d, nil
	}
	return today, fmt.Errorf("%w: %q", ErrUnknownWeekday, token)
}
