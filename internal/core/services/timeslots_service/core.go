package timeslots_service

import (
	"context"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

type TimeSlotsService struct {
	clinicRepository  out.ClinicRepository
	dentistRepository out.DentistRepository
	cachePort         out.CachePort
	logger            out.LoggerPort
	opts              Options
}

// NewTimeSlotsService создает сервис. cachePort может быть nil, тогда кэш не используется.
func NewTimeSlotsService(
	clinicRepository out.ClinicRepository,
	dentistRepository out.DentistRepository,
	cachePort out.CachePort,
	logger out.LoggerPort,
	opts Options,
) *TimeSlotsService {
	return &TimeSlotsService{
		clinicRepository:  clinicRepository,
		dentistRepository: dentistRepository,
		cachePort:         cachePort,
		logger:            logger.WithModule("TimeSlotsService"),
		opts:              opts.withDefaults(),
	}
}

func (s *TimeSlotsService) GetTimeSlots(ctx context.Context, clinicID string, start, end time.Time) ([]domain.TimeSlot, error) {
	debugInfo := TimeSlotsServiceDebug{}
	logger := s.logger.WithFields(out.LogFields{
		"clinicId": clinicID,
		"start":    start.UnixMilli(),
		"end":      end.UnixMilli(),
	})

	logger.Info("timeslots.generate.started", out.LogFields{})

	fetchClinicDebug := domain.NewDebugInfo("timeslots.generate.clinic.fetch")
	clinic, err := s.clinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		logger.Error("timeslots.generate.clinic.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, domain.NewInternalFailure(err)
	}
	fetchClinicDebug.Elapse()
	debugInfo.AddDebugInfo(fetchClinicDebug)

	if clinic == nil {
		logger.Info("timeslots.generate.clinic.not_found", out.LogFields{})
		return nil, domain.ErrClinicNotFound
	}

	dateRange := domain.DateRange{Start: start, End: end}
	if err := dateRange.Validate(); err != nil {
		logger.Info("timeslots.generate.range.invalid", out.LogFields{})
		return nil, err
	}

	cacheKey := out.SlotsCacheKey{ClinicID: clinicID, Start: start, End: end}

	// Проверяем кэш только если он включен
	if s.cachePort != nil {
		if slots, exists := s.cachePort.GetTimeSlots(ctx, cacheKey); exists {
			logger.Debug("timeslots.generate.cache.hit", out.LogFields{
				"slotsCount": len(slots),
			})
			return slots, nil
		}
		logger.Debug("timeslots.generate.cache.miss", out.LogFields{})
	}

	fetchDentistsDebug := domain.NewDebugInfo("timeslots.generate.dentists.fetch")
	dentists, err := s.dentistRepository.FindByClinic(ctx, clinicID)
	if err != nil {
		logger.Error("timeslots.generate.dentists.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, domain.NewInternalFailure(err)
	}
	fetchDentistsDebug.Count = len(dentists)
	fetchDentistsDebug.Elapse()
	debugInfo.AddDebugInfo(fetchDentistsDebug)

	generateDebug := domain.NewDebugInfo("timeslots.generate.walk")
	generateDebug.AddOption("dayStep", string(s.opts.DayStep))
	slots, err := s.walkRange(clinic, dentists, dateRange)
	if err != nil {
		logger.Error("timeslots.generate.walk_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, domain.NewInternalFailure(err)
	}
	generateDebug.Count = len(slots)
	generateDebug.Elapse()
	debugInfo.AddDebugInfo(generateDebug)

	// Сохраняем в кэш только если он включен, ошибка кэша не ломает запрос
	if s.cachePort != nil {
		if err := s.cachePort.StoreTimeSlots(ctx, cacheKey, slots); err != nil {
			logger.Warn("timeslots.generate.cache.store_failed", out.LogFields{
				"error": err.Error(),
			})
		}
	}

	logger.Debug("timeslots.generate.finished", out.LogFields{
		"slotsCount": len(slots),
		"timings":    domain.Summary(debugInfo.Data()),
	})

	return slots, nil
}
