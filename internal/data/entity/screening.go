package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

// Screening is one scheduled showing of a film. Start and End are wall
// clock "HH:MM" strings with no date component; End is derived from the
// film duration when the screening is created. Room assignment happens
// in a second step and is recorded on the room, not here.
type Screening struct {
	BaseSimple
	FilmID uuid.UUID `db:"film_id"`
	Start  string    `db:"start_time"`
	End    string    `db:"end_time"`
}

// ParseClock parses an "HH:MM" wall-clock time into minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &FormatError{Input: s, Reason: "expected HH:MM"}
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, &FormatError{Input: s, Reason: "hour must be 00..23"}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, &FormatError{Input: s, Reason: "minute must be 00..59"}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM", wrapping past
// midnight. The scheduling model is single-day, so a screening that would
// run past 24:00 simply displays the wrapped time.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndTime derives the end of a showing that starts at the given clock
// time and runs for the film's duration.
func EndTime(start string, durationMinutes int) (string, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(startMin + durationMinutes), nil
}
