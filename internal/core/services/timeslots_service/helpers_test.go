package timeslots_service

import (
	"context"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

const testClinicID = "5fb8c8a1c2d3e4f5a6b7c8d9"

// 8 января 2024 года понедельник
var (
	monday   = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func weekdayHours(interval string) domain.OpeningHours {
	return domain.OpeningHours{
		"monday":    interval,
		"tuesday":   interval,
		"wednesday": interval,
		"thursday":  interval,
		"friday":    interval,
	}
}

func testClinic(hours domain.OpeningHours) *domain.Clinic {
	return &domain.Clinic{
		ID:           testClinicID,
		Name:         "Your Dentist",
		OpeningHours: hours,
	}
}

func testDentist(id string) domain.Dentist {
	return domain.Dentist{
		ID:         id,
		ClinicID:   testClinicID,
		LunchBreak: "12:00-12:30",
		FikaBreak:  "15:00-15:15",
	}
}

func newTestService(clinic *domain.Clinic, dentists []domain.Dentist, cache out.CachePort, opts Options) (*TimeSlotsService, *MockClinicRepository, *MockDentistRepository) {
	clinicRepository := &MockClinicRepository{
		FindByIDFunc: func(ctx context.Context, clinicID string) (*domain.Clinic, error) {
			if clinic == nil || clinicID != clinic.ID {
				return nil, nil
			}
			return clinic, nil
		},
	}
	dentistRepository := &MockDentistRepository{
		FindByClinicFunc: func(ctx context.Context, clinicID string) ([]domain.Dentist, error) {
			return dentists, nil
		},
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	service := NewTimeSlotsService(clinicRepository, dentistRepository, cache, logger.NewNopLogger(), opts)
	return service, clinicRepository, dentistRepository
}

func slotClock(slot domain.TimeSlot) string {
	return slot.Start.Time.UTC().Format("15:04") + "-" + slot.End.Time.UTC().Format("15:04")
}
