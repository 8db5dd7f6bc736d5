package timeslots_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/utils"
)

// rangeDays returns the instants the range walker visits, start and end inclusive.
func (s *TimeSlotsService) rangeDays(dateRange domain.DateRange) []time.Time {
	days := make([]time.Time, 0)
	start := dateRange.Start.In(s.opts.Location)
	end := dateRange.End.In(s.opts.Location)

	if s.opts.DayStep == config.DayStepCalendar {
		last := utils.StartCurrentDay(end)
		for day := utils.StartCurrentDay(start); !day.After(last); day = utils.StartNextDay(day) {
			days = append(days, day)
		}
		return days
	}

	// Фиксированный шаг в сутки, время суток start сохраняется
	for day := start; !day.After(end); day = day.Add(DefaultDayLength) {
		days = append(days, day)
	}
	return days
}

// clinicDayWindow возвращает время открытия и закрытия клиники для дня day.
func (s *TimeSlotsService) clinicDayWindow(clinic *domain.Clinic, day time.Time) (time.Time, time.Time, error) {
	weekday := domain.WeekdayNames[day.Weekday()]

	hours, exists := clinic.OpeningHours[weekday]
	if !exists {
		return time.Time{}, time.Time{}, fmt.Errorf("opening hours of clinic %s are not defined for %s", clinic.ID, weekday)
	}

	openTime, closeTime, err := parseTimeInterval(hours)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid opening hours of clinic %s for %s: %w", clinic.ID, weekday, err)
	}

	closeAnchor := day
	if s.opts.CloseAnchor == config.CloseAnchorNow {
		closeAnchor = s.opts.Now().In(s.opts.Location)
	}

	return combineDateAndTimeOfDay(day, openTime), combineDateAndTimeOfDay(closeAnchor, closeTime), nil
}

// walkRange обходит диапазон по дням, пропуская выходные, и собирает слоты
// в порядке день, затем дантист.
func (s *TimeSlotsService) walkRange(clinic *domain.Clinic, dentists []domain.Dentist, dateRange domain.DateRange) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)

	for _, day := range s.rangeDays(dateRange) {
		if domain.IsWeekend(day.Weekday()) {
			continue
		}

		open, close, err := s.clinicDayWindow(clinic, day)
		if err != nil {
			return nil, err
		}

		for _, dentist := range dentists {
			dentistSlots, err := s.generateDentistSlots(clinic.ID, dentist, day, open, close)
			if err != nil {
				return nil, err
			}
			slots = append(slots, dentistSlots...)
		}
	}

	return slots, nil
}
