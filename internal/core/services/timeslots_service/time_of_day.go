package timeslots_service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeOfDay is a local wall-clock time without a date.
type timeOfDay struct {
	Hour   int
	Minute int
}

func (t timeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// parseTimeOfDay разбирает строку "HH:MM", допускается однозначный час ("9:00")
// и "24:00" как конец суток.
func parseTimeOfDay(value string) (timeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	if minute < 0 || minute > 59 || hour < 0 || hour > 24 || (hour == 24 && minute != 0) {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q: out of range", value)
	}

	return timeOfDay{Hour: hour, Minute: minute}, nil
}

// parseTimeInterval разбирает интервал вида "HH:MM-HH:MM".
func parseTimeInterval(value string) (timeOfDay, timeOfDay, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return timeOfDay{}, timeOfDay{}, fmt.Errorf("invalid interval %q", value)
	}

	start, err := parseTimeOfDay(parts[0])
	if err != nil {
		return timeOfDay{}, timeOfDay{}, err
	}
	end, err := parseTimeOfDay(parts[1])
	if err != nil {
		return timeOfDay{}, timeOfDay{}, err
	}

	return start, end, nil
}

// combineDateAndTimeOfDay returns a new instant on the calendar date of date (in its
// location) at the given wall-clock time. date itself is never modified.
func combineDateAndTimeOfDay(date time.Time, tod timeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, 0, 0, date.Location())
}
