package check_serviceability

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

type fakeConfigRepo struct {
	configs []*domain.SlotConfiguration
	err     error
}

func (f *fakeConfigRepo) ListByPincode(_ context.Context, _ string) ([]*domain.SlotConfiguration, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.configs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute_AggregatesConfigurations(t *testing.T) {
	configs := []*domain.SlotConfiguration{
		{
			Pincode:       "560001",
			ProductType:   domain.ProductTypeGeneral,
			Area:          "MG Road",
			City:          "Bangalore",
			Zone:          "South",
			DeliveryTypes: []domain.DeliveryType{domain.DeliveryNextDay, domain.DeliveryScheduled},
			TimeSlots: []domain.TimeSlot{
				{SlotID: "S1", DeliveryCharge: decimal.NewFromInt(30)},
				{SlotID: "S2", DeliveryCharge: decimal.NewFromInt(20)},
			},
		},
		{
			Pincode:       "560001",
			ProductType:   domain.ProductTypePerishable,
			Area:          "MG Road",
			City:          "Bangalore",
			Zone:          "South",
			DeliveryTypes: []domain.DeliveryType{domain.DeliverySameDay, domain.DeliveryNextDay},
			TimeSlots: []domain.TimeSlot{
				{SlotID: "S3", DeliveryCharge: decimal.NewFromInt(50)},
			},
			SpecialRules: domain.SpecialRules{TemperatureControl: true, QualityChecks: true},
		},
	}

	uc := NewUseCase(&fakeConfigRepo{configs: configs}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Pincode: "560001"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.True(t, resp.Serviceable)
	assert.Equal(t, "MG Road", resp.Area)
	assert.Equal(t, "Bangalore", resp.City)
	assert.Equal(t, "South", resp.Zone)

	// Объединение с сохранением порядка встречи
	assert.Equal(t, []domain.DeliveryType{
		domain.DeliveryNextDay,
		domain.DeliveryScheduled,
		domain.DeliverySameDay,
	}, resp.DeliveryTypes)
	assert.Equal(t, []string{domain.ProductTypeGeneral, domain.ProductTypePerishable}, resp.ProductTypes)

	// Минимальная стоимость по типу товара
	assert.True(t, resp.MinimumCharges[domain.ProductTypeGeneral].Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.MinimumCharges[domain.ProductTypePerishable].Equal(decimal.NewFromInt(50)))

	assert.Equal(t, []string{"Temperature Controlled Delivery", "Quality Assured Delivery"}, resp.SpecialServices)
}

func TestUseCase_Execute_UnserviceablePincode(t *testing.T) {
	uc := NewUseCase(&fakeConfigRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Pincode: "999999"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.Serviceable)
	assert.Contains(t, resp.Message, "999999")
	assert.Empty(t, resp.DeliveryTypes)
}

func TestUseCase_Execute_MissingPincode(t *testing.T) {
	uc := NewUseCase(&fakeConfigRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	uc := NewUseCase(&fakeConfigRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Pincode: "560001"})
	assert.ErrorIs(t, err, ErrInternal)
}
