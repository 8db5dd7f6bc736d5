package timeslots_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

// Кэширование слотов

func (s *TimeSlotsService) InvalidateClinicCache(ctx context.Context, clinicID string) error {
	if s.cachePort == nil {
		return nil
	}

	if err := s.cachePort.InvalidateClinic(ctx, clinicID); err != nil {
		return fmt.Errorf("timeslots.cache.invalidate_clinic_failed: %w", err)
	}

	s.logger.Info("timeslots.cache.clinic.invalidated", out.LogFields{
		"clinicId": clinicID,
	})
	return nil
}

func (s *TimeSlotsService) InvalidateAllCache(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	if err := s.cachePort.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("timeslots.cache.invalidate_all_failed: %w", err)
	}

	s.logger.Info("timeslots.cache.all.invalidated", out.LogFields{})
	return nil
}
