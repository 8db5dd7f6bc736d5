package utils

import (
	"time"
)

// StartNextDay возвращает начало следующего календарного дня в той же таймзоне.
func StartNextDay(t time.Time) time.Time {
	// AddDate учитывает переходы на летнее время, в отличие от Add(24h)
	newDate := t.AddDate(0, 0, 1)
	return time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
}

func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FromUnixMilliIn(ms int64, location *time.Location) time.Time {
	if location == nil {
		location = time.Local
	}
	return time.UnixMilli(ms).In(location)
}
