package out

import (
	"context"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
)

type ClinicRepository interface {
	// Возвращает nil, nil если клиника не найдена
	FindByID(ctx context.Context, clinicID string) (*domain.Clinic, error)
}

type DentistRepository interface {
	FindByClinic(ctx context.Context, clinicID string) ([]domain.Dentist, error)
}
