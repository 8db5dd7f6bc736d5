package out

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
)

type SlotsCacheKey struct {
	ClinicID string
	Start    time.Time
	End      time.Time
}

func (k SlotsCacheKey) String() string {
	return fmt.Sprintf("%s:%d:%d", k.ClinicID, k.Start.UnixMilli(), k.End.UnixMilli())
}

type CachePort interface {
	GetTimeSlots(ctx context.Context, key SlotsCacheKey) ([]domain.TimeSlot, bool)
	StoreTimeSlots(ctx context.Context, key SlotsCacheKey, slots []domain.TimeSlot) error
	InvalidateClinic(ctx context.Context, clinicID string) error
	InvalidateAll(ctx context.Context) error
}
