package timeslots_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/json_types"
)

type breakWindow struct {
	Start time.Time
	End   time.Time
}

func newBreakWindow(day time.Time, value string) (breakWindow, error) {
	start, end, err := parseTimeInterval(value)
	if err != nil {
		return breakWindow{}, err
	}
	return breakWindow{
		Start: combineDateAndTimeOfDay(day, start),
		End:   combineDateAndTimeOfDay(day, end),
	}, nil
}

// touches reports whether a slot touches the break at either endpoint. The slot end is
// checked against the closed break interval, so a slot ending exactly at the break start
// is dropped. The slot start is checked against [Start, End) unless boundary is closed.
func (b breakWindow) touches(slotStart, slotEnd time.Time, boundary config.BreakBoundary) bool {
	startInside := !slotStart.Before(b.Start) && slotStart.Before(b.End)
	if boundary == config.BreakBoundaryClosed {
		startInside = !slotStart.Before(b.Start) && !slotStart.After(b.End)
	}
	endInside := !slotEnd.Before(b.Start) && !slotEnd.After(b.End)

	return startInside || endInside
}

// generateDentistSlots нарезает рабочее время клиники за день на слоты фиксированной
// длины от открытия и исключает слоты, задевающие обед или фику дантиста.
func (s *TimeSlotsService) generateDentistSlots(clinicID string, dentist domain.Dentist, day, open, close time.Time) ([]domain.TimeSlot, error) {
	lunch, err := newBreakWindow(day, dentist.LunchBreak)
	if err != nil {
		return nil, fmt.Errorf("invalid lunch break of dentist %s: %w", dentist.ID, err)
	}
	fika, err := newBreakWindow(day, dentist.FikaBreak)
	if err != nil {
		return nil, fmt.Errorf("invalid fika break of dentist %s: %w", dentist.ID, err)
	}

	width := s.opts.SlotDuration
	slots := make([]domain.TimeSlot, 0)

	for slotStart := open; !slotStart.Add(width).After(close); slotStart = slotStart.Add(width) {
		slotEnd := slotStart.Add(width)

		// Сначала обед, затем фика, первое совпадение исключает слот
		if lunch.touches(slotStart, slotEnd, s.opts.BreakBoundary) {
			continue
		}
		if fika.touches(slotStart, slotEnd, s.opts.BreakBoundary) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			DentistID: dentist.ID,
			ClinicID:  clinicID,
			Start:     json_types.NewMillis(slotStart),
			End:       json_types.NewMillis(slotEnd),
		})
	}

	return slots, nil
}
