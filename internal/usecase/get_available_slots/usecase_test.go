package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	availabilityRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/availability"
	configRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/slotconfig"
)

type fakeConfigRepo struct {
	configs map[string]*domain.SlotConfiguration // pincode|productType
	err     error
}

func (f *fakeConfigRepo) GetByPincodeAndProductType(_ context.Context, pincode, productType string) (*domain.SlotConfiguration, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.configs[pincode+"|"+productType]
	if !ok {
		return nil, configRepo.ErrConfigNotFound
	}
	return cfg, nil
}

type fakeAvailabilityRepo struct {
	entries map[string]*domain.SlotAvailability // slotID|date|deliveryType
	err     error
}

func availKey(slotID string, date time.Time, dt domain.DeliveryType) string {
	return fmt.Sprintf("%s|%s|%s", slotID, date.Format(domain.DateFormat), dt)
}

func (f *fakeAvailabilityRepo) GetBySlotKey(_ context.Context, _ string, slotID string, date time.Time, dt domain.DeliveryType) (*domain.SlotAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	avail, ok := f.entries[availKey(slotID, date, dt)]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return avail, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

func testConfig(date time.Time) *domain.SlotConfiguration {
	day := domain.WeekdayTag(date)
	return &domain.SlotConfiguration{
		ID:            1,
		Pincode:       "560001",
		SlotType:      domain.SlotTypeStandard,
		ProductType:   domain.ProductTypeGeneral,
		Area:          "MG Road",
		City:          "Bangalore",
		Zone:          "South",
		DeliveryTypes: []domain.DeliveryType{domain.DeliveryNextDay, domain.DeliveryScheduled},
		TimeSlots: []domain.TimeSlot{
			{
				SlotID:         "EVENING_1",
				Name:           "Evening Delivery",
				StartTime:      "18:00",
				EndTime:        "21:00",
				MaxCapacity:    40,
				DeliveryCharge: decimal.NewFromInt(20),
				DaysAvailable:  []domain.Weekday{day},
			},
			{
				SlotID:         "MORNING_1",
				Name:           "Morning Delivery",
				StartTime:      "06:00",
				EndTime:        "09:00",
				MaxCapacity:    50,
				DeliveryCharge: decimal.NewFromInt(30),
				DaysAvailable:  []domain.Weekday{day},
			},
		},
		SpecialRules: domain.SpecialRules{QualityChecks: true},
		IsActive:     true,
	}
}

func availableEntry(slotID string, date time.Time, dt domain.DeliveryType, available int) *domain.SlotAvailability {
	status := domain.AvailabilityAvailable
	if available <= 0 {
		status = domain.AvailabilityFull
	}
	return &domain.SlotAvailability{
		Pincode:        "560001",
		SlotID:         slotID,
		Date:           date,
		DeliveryType:   dt,
		MaxCapacity:    50,
		AvailableSlots: available,
		Status:         status,
	}
}

func newTestUseCase(cfgRepo ConfigRepository, avRepo AvailabilityRepository, now time.Time) *UseCase {
	uc := NewUseCase(cfgRepo, avRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_SortsOffersByStartTime(t *testing.T) {
	cfg := testConfig(testDate)
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("EVENING_1", testDate, domain.DeliveryNextDay): availableEntry("EVENING_1", testDate, domain.DeliveryNextDay, 12),
		availKey("MORNING_1", testDate, domain.DeliveryNextDay): availableEntry("MORNING_1", testDate, domain.DeliveryNextDay, 7),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.AvailableSlots, 2)
	assert.Equal(t, "MORNING_1", resp.AvailableSlots[0].SlotID)
	assert.Equal(t, "EVENING_1", resp.AvailableSlots[1].SlotID)

	// Оценка времени доставки - середина окна
	assert.Equal(t, "07:30", resp.AvailableSlots[0].EstimatedDeliveryTime.String())
	assert.Equal(t, "19:30", resp.AvailableSlots[1].EstimatedDeliveryTime.String())

	assert.Equal(t, 7, resp.AvailableSlots[0].AvailableCapacity)
	assert.Equal(t, "MG Road", resp.AvailableSlots[0].Area)
}

func TestUseCase_Execute_ExcludesExhaustedSlots(t *testing.T) {
	cfg := testConfig(testDate)
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("EVENING_1", testDate, domain.DeliveryNextDay): availableEntry("EVENING_1", testDate, domain.DeliveryNextDay, 0),
		availKey("MORNING_1", testDate, domain.DeliveryNextDay): availableEntry("MORNING_1", testDate, domain.DeliveryNextDay, 3),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	require.Len(t, resp.AvailableSlots, 1)
	assert.Equal(t, "MORNING_1", resp.AvailableSlots[0].SlotID)
}

func TestUseCase_Execute_FiltersByWeekday(t *testing.T) {
	cfg := testConfig(testDate)
	// Утренний слот работает только в другой день недели
	cfg.TimeSlots[1].DaysAvailable = []domain.Weekday{domain.WeekdayTag(testDate.AddDate(0, 0, 1))}

	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("EVENING_1", testDate, domain.DeliveryNextDay): availableEntry("EVENING_1", testDate, domain.DeliveryNextDay, 12),
		availKey("MORNING_1", testDate, domain.DeliveryNextDay): availableEntry("MORNING_1", testDate, domain.DeliveryNextDay, 7),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	require.Len(t, resp.AvailableSlots, 1)
	assert.Equal(t, "EVENING_1", resp.AvailableSlots[0].SlotID)
}

func TestUseCase_Execute_SkipsSlotsWithoutAvailabilityCounter(t *testing.T) {
	cfg := testConfig(testDate)
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("MORNING_1", testDate, domain.DeliveryNextDay): availableEntry("MORNING_1", testDate, domain.DeliveryNextDay, 5),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	require.Len(t, resp.AvailableSlots, 1)
	assert.Equal(t, "MORNING_1", resp.AvailableSlots[0].SlotID)
}

func TestUseCase_Execute_UnserviceablePincode(t *testing.T) {
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{}}
	avRepo := &fakeAvailabilityRepo{}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "999999",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Empty(t, resp.AvailableSlots)
	assert.Contains(t, resp.Message, "999999")
}

func TestUseCase_Execute_PerishableTakesPriority(t *testing.T) {
	perishable := testConfig(testDate)
	perishable.ProductType = domain.ProductTypePerishable
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{
		"560001|PERISHABLE": perishable,
	}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("MORNING_1", testDate, domain.DeliveryNextDay): availableEntry("MORNING_1", testDate, domain.DeliveryNextDay, 5),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL", "PERISHABLE"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliveryNextDay,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, domain.ProductTypePerishable, resp.ProductType)
	require.Len(t, resp.AvailableSlots, 1)
}

func TestUseCase_Execute_DefaultsToTomorrowNextDay(t *testing.T) {
	now := time.Date(2026, 8, 10, 16, 45, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC)

	cfg := testConfig(tomorrow)
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("MORNING_1", tomorrow, domain.DeliveryNextDay): availableEntry("MORNING_1", tomorrow, domain.DeliveryNextDay, 5),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
	})
	require.NoError(t, err)

	assert.Equal(t, tomorrow, resp.DeliveryDate)
	assert.Equal(t, domain.DeliveryNextDay, resp.DeliveryType)
	require.Len(t, resp.AvailableSlots, 1)
}

func TestUseCase_Execute_UnsupportedDeliveryType(t *testing.T) {
	cfg := testConfig(testDate) // поддерживает next_day и scheduled
	cfgRepo := &fakeConfigRepo{configs: map[string]*domain.SlotConfiguration{"560001|GENERAL": cfg}}
	avRepo := &fakeAvailabilityRepo{entries: map[string]*domain.SlotAvailability{
		availKey("MORNING_1", testDate, domain.DeliverySameDay): availableEntry("MORNING_1", testDate, domain.DeliverySameDay, 5),
	}}

	uc := newTestUseCase(cfgRepo, avRepo, testDate)

	resp, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryDate: &testDate,
		DeliveryType: domain.DeliverySameDay,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Empty(t, resp.AvailableSlots)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeConfigRepo{}, &fakeAvailabilityRepo{}, testDate)

	_, err := uc.Execute(context.Background(), &Request{ProductTypes: []string{"GENERAL"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Pincode: "560001"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
		DeliveryType: "teleport",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	cfgRepo := &fakeConfigRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(cfgRepo, &fakeAvailabilityRepo{}, testDate)

	_, err := uc.Execute(context.Background(), &Request{
		Pincode:      "560001",
		ProductTypes: []string{"GENERAL"},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
