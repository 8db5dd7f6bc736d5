package timeslots_service

import (
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
)

const (
	DefaultDayLength    = 24 * time.Hour
	DefaultSlotDuration = domain.DefaultSlotMinutes * time.Minute
)

type Options struct {
	// Таймзона, в которой определяются день недели и время суток
	Location     *time.Location
	SlotDuration time.Duration
	DayStep      config.DayStep
	// Дата, к которой привязывается время закрытия клиники
	CloseAnchor   config.CloseAnchor
	BreakBoundary config.BreakBoundary
	Now           func() time.Time
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Location:      cfg.Location,
		SlotDuration:  cfg.SlotDuration(),
		DayStep:       cfg.Slots.DayStep,
		CloseAnchor:   cfg.Slots.CloseAnchor,
		BreakBoundary: cfg.Slots.BreakBoundary,
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.SlotDuration <= 0 {
		o.SlotDuration = DefaultSlotDuration
	}
	if o.DayStep == "" {
		o.DayStep = config.DayStepFixed
	}
	if o.CloseAnchor == "" {
		o.CloseAnchor = config.CloseAnchorDay
	}
	if o.BreakBoundary == "" {
		o.BreakBoundary = config.BreakBoundaryTouch
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
