package in

import (
	"context"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
)

type TimeSlotsUseCase interface {
	// Генерация слотов всех дантистов клиники за диапазон дат
	GetTimeSlots(ctx context.Context, clinicID string, start, end time.Time) ([]domain.TimeSlot, error)

	// Сброс кэша слотов
	InvalidateClinicCache(ctx context.Context, clinicID string) error
	InvalidateAllCache(ctx context.Context) error
}
