package domain

import "time"

// Минимальная длина диапазона, диапазон должен быть строго длиннее суток
const MinRangeSpan = 24 * time.Hour

type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) || r.End.Sub(r.Start) <= MinRangeSpan {
		return ErrInvalidRange
	}
	return nil
}
