package book_slot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	availabilityRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/availability"
)

type fakeBookingRepo struct {
	created []*domain.SlotBooking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.SlotBooking) (*domain.SlotBooking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, booking)
	return booking, nil
}

type fakeAvailabilityRepo struct {
	reservations int
	err          error
}

func (f *fakeAvailabilityRepo) ReserveCapacity(_ context.Context, _, _ string, _ time.Time, _ domain.DeliveryType, _ decimal.Decimal) error {
	if f.err != nil {
		return f.err
	}
	f.reservations++
	return nil
}

// fakeTxManager выполняет функцию без настоящей транзакции, но фиксирует
// факт вызова и итог (commit/rollback)
type fakeTxManager struct {
	calls      int
	rolledBack bool
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		OrderID:    "ORD-1001",
		CustomerID: "CUST-42",
		CustomerAddress: domain.Address{
			Pincode: "560001",
			Line:    "12 MG Road",
			City:    "Bangalore",
		},
		CustomerPhone: "+91-9876543210",
		Products: []domain.OrderLine{
			{GroupID: "G1", VariantID: "V1", ProductType: "PERISHABLE", Quantity: 2, Weight: decimal.NewFromInt(500), Unit: "g"},
			{GroupID: "G2", VariantID: "V2", ProductType: "GENERAL", Quantity: 1, Weight: decimal.NewFromInt(1), Unit: "kg"},
		},
		SelectedSlot: SelectedSlot{
			SlotID:                "MORNING_1",
			SlotName:              "Morning Delivery",
			StartTime:             "06:00",
			EndTime:               "09:00",
			DeliveryCharge:        decimal.NewFromInt(30),
			EstimatedDeliveryTime: "07:30",
			DeliveryDate:          time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
			DeliveryType:          domain.DeliveryNextDay,
			Area:                  "MG Road",
			City:                  "Bangalore",
		},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	availRepo := &fakeAvailabilityRepo{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(bookingRepo, availRepo, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.BookingID)
	assert.True(t, strings.HasPrefix(resp.ConfirmationCode, domain.ConfirmationCodePrefix))
	assert.Len(t, resp.ConfirmationCode, len(domain.ConfirmationCodePrefix)+8)
	assert.Equal(t, resp.ConfirmationCode, strings.ToUpper(resp.ConfirmationCode))

	// 2 x 500g + 1 x 1kg = 2.0 кг
	assert.True(t, resp.TotalWeight.Equal(decimal.NewFromInt(2)),
		"expected 2, got %s", resp.TotalWeight.String())

	assert.Equal(t, "06:00 - 09:00", resp.DeliveryDetails.TimeRange)
	assert.Equal(t, "Morning Delivery", resp.DeliveryDetails.SlotName)

	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, 1, availRepo.reservations)
	require.Len(t, bookingRepo.created, 1)

	created := bookingRepo.created[0]
	assert.Equal(t, resp.BookingID, created.BookingID)
	assert.Equal(t, "ORD-1001", created.OrderID)
	assert.Equal(t, domain.BookingConfirmed, created.Status)
	assert.Equal(t, "560001", created.Pincode)
	assert.True(t, created.TotalWeight.Equal(decimal.NewFromInt(2)))
}

func TestUseCase_Execute_SlotFilledUp(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	availRepo := &fakeAvailabilityRepo{err: availabilityRepo.ErrSlotFull}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(bookingRepo, availRepo, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Транзакция откатилась, бронирование не записано
	assert.True(t, txMgr.rolledBack)
	assert.Empty(t, bookingRepo.created)
}

func TestUseCase_Execute_BookingInsertFailureRollsBack(t *testing.T) {
	bookingRepo := &fakeBookingRepo{err: errors.New("insert failed")}
	availRepo := &fakeAvailabilityRepo{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(bookingRepo, availRepo, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, txMgr.rolledBack)
}

func TestUseCase_Execute_RepeatedOrderBookingsAreDistinct(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	availRepo := &fakeAvailabilityRepo{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(bookingRepo, availRepo, txMgr, nopLogger{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Дедупликации по заказу нет: два бронирования с разными ID и два
	// списания вместимости
	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.Equal(t, 2, availRepo.reservations)
	assert.Len(t, bookingRepo.created, 2)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeTxManager{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing order id", mutate: func(r *Request) { r.OrderID = "" }},
		{name: "missing customer id", mutate: func(r *Request) { r.CustomerID = "" }},
		{name: "missing pincode", mutate: func(r *Request) { r.CustomerAddress.Pincode = "" }},
		{name: "missing slot id", mutate: func(r *Request) { r.SelectedSlot.SlotID = "" }},
		{name: "missing delivery date", mutate: func(r *Request) { r.SelectedSlot.DeliveryDate = time.Time{} }},
		{name: "unknown delivery type", mutate: func(r *Request) { r.SelectedSlot.DeliveryType = "teleport" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
