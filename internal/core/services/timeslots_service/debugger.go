package timeslots_service

import (
	"sync"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
)

type TimeSlotsServiceDebug struct {
	mu   sync.Mutex
	data []domain.DebugInfo
}

func (d *TimeSlotsServiceDebug) AddDebugInfo(info domain.DebugInfo) {
	d.mu.Lock()
	d.data = append(d.data, info)
	d.mu.Unlock()
}

func (d *TimeSlotsServiceDebug) Data() []domain.DebugInfo {
	d.mu.Lock()
	defer d.mu.Unlock()

	data := make([]domain.DebugInfo, len(d.data))
	copy(data, d.data)
	return data
}
