package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	bookingRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID      map[string]*domain.SlotBooking
	byOrderID map[string]*domain.SlotBooking
	err       error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, bookingID string) (*domain.SlotBooking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking, ok := f.byID[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByOrderID(_ context.Context, orderID string) (*domain.SlotBooking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking, ok := f.byOrderID[orderID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.SlotBooking {
	return &domain.SlotBooking{
		BookingID:    "b-1",
		OrderID:      "ORD-1001",
		CustomerID:   "CUST-42",
		Pincode:      "560001",
		SlotID:       "MORNING_1",
		DeliveryDate: time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
		DeliveryType: domain.DeliveryNextDay,
		SlotDetails: domain.SlotSnapshot{
			SlotName:          "Morning Delivery",
			StartTime:         "06:00",
			EndTime:           "09:00",
			EstimatedDelivery: "07:30",
		},
		CustomerAddress:  domain.Address{Pincode: "560001", Line: "12 MG Road", City: "Bangalore"},
		CustomerPhone:    "+91-9876543210",
		DeliveryCharge:   decimal.NewFromInt(30),
		TotalWeight:      decimal.NewFromInt(2),
		Status:           domain.BookingConfirmed,
		ConfirmationCode: "SLOT-AB12CD34",
		BookedAt:         time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[string]*domain.SlotBooking{"b-1": testBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "2026-08-11", resp.DeliveryDate)
	assert.Equal(t, "06:00", resp.SlotDetails.StartTime)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byID: map[string]*domain.SlotBooking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_EmptyID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByOrderID(t *testing.T) {
	repo := &fakeBookingRepo{byOrderID: map[string]*domain.SlotBooking{"ORD-1001": testBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByOrderID(context.Background(), "ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", resp.OrderID)
}

func TestService_GetByOrderID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{byOrderID: map[string]*domain.SlotBooking{}}, nopLogger{})

	_, err := svc.GetByOrderID(context.Background(), "ORD-9999")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByOrderID_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetByOrderID(context.Background(), "ORD-1001")
	assert.ErrorIs(t, err, ErrInternal)
}
