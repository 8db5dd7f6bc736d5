package domain

import "time"

// Ключи часов работы клиники: день недели в нижнем регистре
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// OpeningHours maps a lowercase weekday name to an "HH:MM-HH:MM" interval.
type OpeningHours map[string]string

type Clinic struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	OpeningHours OpeningHours `json:"openinghours"`
}

func IsWeekend(weekday time.Weekday) bool {
	return weekday == time.Saturday || weekday == time.Sunday
}
