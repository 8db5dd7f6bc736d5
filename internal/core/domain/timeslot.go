package domain

import (
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/json_types"
)

const DefaultSlotMinutes = 30

type TimeSlot struct {
	DentistID string            `json:"dentist"`
	ClinicID  string            `json:"clinic"`
	Start     json_types.Millis `json:"start"`
	End       json_types.Millis `json:"end"`
}
