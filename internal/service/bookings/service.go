package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/booking"
	"github.com/freshkart/FK-DeliverySlotsService/internal/service/bookings/models"
)

// Service сервис чтения бронирований (по ID и по заказу).
// Назначение райдера и завершение доставки - внешние процессы, этот сервис
// бронирования не изменяет.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByOrderID получает бронирование по ID заказа
func (s *Service) GetByOrderID(ctx context.Context, orderID string) (*models.BookingResponse, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId is required", ErrInvalidInput)
	}

	s.logger.Info("GetByOrderID: fetching booking for order=%s", orderID)

	booking, err := s.bookingRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByOrderID: no booking for order=%s", orderID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByOrderID: repository error for order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: GetByOrderID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}
