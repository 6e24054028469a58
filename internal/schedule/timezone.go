package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownTimezone is reported when a timezone token cannot be resolved.
var ErrUnknownTimezone = errors.New("unknown timezone")

// MaxOffset bounds offsets on both sides of UTC.
const MaxOffset Offset = 14 * 3600

// Offset is a fixed distance from UTC in seconds, positive east of Greenwich.
type Offset int

// Seconds returns the offset as local minus UTC.
func (o Offset) Seconds() int { return int(o) }

// UTCMinusLocal returns the offset with the opposite sign convention.
func (o Offset) UTCMinusLocal() int { return -int(o) }

// Valid reports whether the offset lies within ±14h.
func (o Offset) Valid() bool { return o >= -MaxOffset && o <= MaxOffset }

// String renders the offset as UTC±hh:mm.
func (o Offset) String() string {
	sign := "+"
	secs := int(o)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// LocalOffset returns the offset of t's location at t.
func LocalOffset(t time.Time) Offset {
	_, secs := t.Zone()
	return Offset(secs)
}

// Timezone is a resolved offset together with its display label.
type Timezone struct {
	Name   string `json:"name"`
	Offset Offset `json:"offset_seconds"`
}

// Location returns a fixed-offset location for formatting.
func (tz Timezone) Location() *time.Location {
	return time.FixedZone(tz.Label(), int(tz.Offset))
}

// Label returns the name shown in table headers.
func (tz Timezone) Label() string {
	if tz.Name != "" {
		return tz.Name
	}
	return tz.Offset.String()
}

const (
	hour     = 3600
	halfHour = 1800
)

// namedOffsets holds standard-time offsets for common abbreviations.
// Ambiguous abbreviations use their most common meaning (CST is US Central).
var namedOffsets = map[string]Offset{
	"UTC":  0,
	"GMT":  0,
	"Z":    0,
	"WET":  0,
	"BST":  1 * hour,
	"WEST": 1 * hour,
	"CET":  1 * hour,
	"WAT":  1 * hour,
	"CEST": 2 * hour,
	"EET":  2 * hour,
	"CAT":  2 * hour,
	"SAST": 2 * hour,
	"IST":  5*hour + halfHour,
	"EEST": 3 * hour,
	"MSK":  3 * hour,
	"EAT":  3 * hour,
	"AST":  -4 * hour,
	"IRST": 3*hour + halfHour,
	"GST":  4 * hour,
	"AFT":  4*hour + halfHour,
	"PKT":  5 * hour,
	"NPT":  5*hour + 45*60,
	"BDT":  6 * hour,
	"MMT":  6*hour + halfHour,
	"ICT":  7 * hour,
	"WIB":  7 * hour,
	"HKT":  8 * hour,
	"SGT":  8 * hour,
	"PHT":  8 * hour,
	"AWST": 8 * hour,
	"JST":  9 * hour,
	"KST":  9 * hour,
	"ACST": 9*hour + halfHour,
	"AEST": 10 * hour,
	"ACDT": 10*hour + halfHour,
	"AEDT": 11 * hour,
	"NZST": 12 * hour,
	"NZDT": 13 * hour,
	"HST":  -10 * hour,
	"AKST": -9 * hour,
	"AKDT": -8 * hour,
	"PST":  -8 * hour,
	"PDT":  -7 * hour,
	"MST":  -7 * hour,
	"MDT":  -6 * hour,
	"CST":  -6 * hour,
	"CDT":  -5 * hour,
	"EST":  -5 * hour,
	"EDT":  -4 * hour,
	"ADT":  -3 * hour,
	"NST":  -3*hour - halfHour,
	"BRT":  -3 * hour,
	"ART":  -3 * hour,
}

// ResolveTimezone maps a user token to a fixed offset. An empty token yields
// the local offset. Unrecognised or out-of-range tokens also yield the local
// offset, together with an error wrapping ErrUnknownTimezone; the returned
// Timezone is usable in every case.
func ResolveTimezone(token string, local Offset, now time.Time) (Timezone, error) {
	fallback := Timezone{Offset: local}
	token = strings.TrimSpace(token)
	if token == "" {
		return fallback, nil
	}

	upper := strings.ToUpper(token)
	if off, ok := namedOffsets[upper]; ok {
		return Timezone{Name: upper, Offset: off}, nil
	}

	if off, ok := parseNumericOffset(upper); ok {
		if !off.Valid() {
			return fallback, fmt.Errorf("%w: %s is outside ±14h", ErrUnknownTimezone, token)
		}
		return Timezone{Name: off.String(), Offset: off}, nil
	}

	if strings.Contains(token, "/") {
		if loc, err := time.LoadLocation(token); err == nil {
			return Timezone{Name: token, Offset: LocalOffset(now.In(loc))}, nil
		}
	}

	return fallback, fmt.Errorf("%w: %q", ErrUnknownTimezone, token)
}

// parseNumericOffset accepts +5, -08, +05:30, +0530, 5.5 with an optional UTC/GMT prefix.
func parseNumericOffset(s string) (Offset, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "UTC"), "GMT")
	if s == "" {
		return 0, false
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	var hours, minutes int
	var err error
	switch {
	case strings.Contains(s, ":"):
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return 0, false
		}
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, false
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return 0, false
		}
	case strings.Contains(s, "."):
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		total := int(math.Round(value * 60))
		hours, minutes = total/60, total%60
	case len(s) == 4:
		if hours, err = strconv.Atoi(s[:2]); err != nil {
			return 0, false
		}
		if minutes, err = strconv.Atoi(s[2:]); err != nil {
			return 0, false
		}
	default:
		if hours, err = strconv.Atoi(s); err != nil {
			return 0, false
		}
	}

	if hours < 0 || minutes < 0 || minutes >= 60 {
		return 0, false
	}
	return Offset(sign * (hours*hour + minutes*60)), true
}
