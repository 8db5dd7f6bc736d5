package timeslots_service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

// --- MockClinicRepository ---
var _ out.ClinicRepository = (*MockClinicRepository)(nil)

type MockClinicRepository struct {
	FindByIDFunc      func(ctx context.Context, clinicID string) (*domain.Clinic, error)
	FindByIDCallCount int32
}

func (m *MockClinicRepository) FindByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	atomic.AddInt32(&m.FindByIDCallCount, 1)
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, clinicID)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// --- MockDentistRepository ---
var _ out.DentistRepository = (*MockDentistRepository)(nil)

type MockDentistRepository struct {
	FindByClinicFunc      func(ctx context.Context, clinicID string) ([]domain.Dentist, error)
	FindByClinicCallCount int32
}

func (m *MockDentistRepository) FindByClinic(ctx context.Context, clinicID string) ([]domain.Dentist, error) {
	atomic.AddInt32(&m.FindByClinicCallCount, 1)
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(ctx, clinicID)
	}
	return nil, errors.New("FindByClinicFunc not implemented in mock")
}

// --- MockCache ---
var _ out.CachePort = (*MockCache)(nil)

type MockCache struct {
	mu       sync.Mutex
	entries  map[string][]domain.TimeSlot
	StoreErr error

	StoreCallCount      int32
	InvalidateClinicIDs []string
	InvalidateAllCount  int32
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string][]domain.TimeSlot)}
}

func (m *MockCache) GetTimeSlots(ctx context.Context, key out.SlotsCacheKey) ([]domain.TimeSlot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slots, exists := m.entries[key.String()]
	return slots, exists
}

func (m *MockCache) StoreTimeSlots(ctx context.Context, key out.SlotsCacheKey, slots []domain.TimeSlot) error {
	atomic.AddInt32(&m.StoreCallCount, 1)
	if m.StoreErr != nil {
		return m.StoreErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = slots
	return nil
}

func (m *MockCache) InvalidateClinic(ctx context.Context, clinicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateClinicIDs = append(m.InvalidateClinicIDs, clinicID)
	return nil
}

func (m *MockCache) InvalidateAll(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateAllCount, 1)
	return nil
}
