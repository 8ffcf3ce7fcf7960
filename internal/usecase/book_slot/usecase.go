package book_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	availabilityRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/availability"
)

// UseCase use case бронирования слота доставки.
//
// Бронирование двухфазное и выполняется в одной сериализуемой транзакции:
// сначала условное резервирование вместимости (уменьшение счетчика только
// пока остаток положительный), затем вставка записи бронирования. Любая
// ошибка откатывает транзакцию целиком - частичных состояний (бронирование
// без списанной вместимости или наоборот) не остается.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookSlot: order=%s, customer=%s, pincode=%s, slot=%s, date=%s, type=%s",
		req.OrderID, req.CustomerID, req.CustomerAddress.Pincode, req.SelectedSlot.SlotID,
		req.SelectedSlot.DeliveryDate.Format(domain.DateFormat), req.SelectedSlot.DeliveryType)

	// Идентификаторы и вес считаются до транзакции - они не зависят от
	// состояния хранилища. Повторное бронирование того же заказа даст новый
	// bookingId и отдельное списание вместимости: дедупликации нет.
	bookingID := uuid.NewString()
	confirmationCode := domain.ConfirmationCodePrefix + strings.ToUpper(bookingID[:8])
	totalWeight := domain.CalculateOrderWeight(req.Products)

	booking := &domain.SlotBooking{
		BookingID:    bookingID,
		OrderID:      req.OrderID,
		CustomerID:   req.CustomerID,
		Pincode:      req.CustomerAddress.Pincode,
		SlotID:       req.SelectedSlot.SlotID,
		DeliveryDate: req.SelectedSlot.DeliveryDate,
		DeliveryType: req.SelectedSlot.DeliveryType,
		SlotDetails: domain.SlotSnapshot{
			SlotName:          req.SelectedSlot.SlotName,
			StartTime:         req.SelectedSlot.StartTime,
			EndTime:           req.SelectedSlot.EndTime,
			EstimatedDelivery: req.SelectedSlot.EstimatedDeliveryTime,
		},
		CustomerAddress:  req.CustomerAddress,
		CustomerPhone:    req.CustomerPhone,
		ProductDetails:   req.Products,
		DeliveryCharge:   req.SelectedSlot.DeliveryCharge,
		TotalWeight:      totalWeight,
		Status:           domain.BookingConfirmed,
		ConfirmationCode: confirmationCode,
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Фаза 1: условное резервирование вместимости. Если слот заполнился
		// между выбором и бронированием - штатный исход, транзакция
		// откатывается без каких-либо записей.
		err := uc.availabilityRepo.ReserveCapacity(
			txCtx,
			booking.Pincode,
			booking.SlotID,
			booking.DeliveryDate,
			booking.DeliveryType,
			totalWeight,
		)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotFull) {
				uc.logger.Warn("BookSlot: slot=%s date=%s filled up before booking order=%s",
					booking.SlotID, booking.DeliveryDate.Format(domain.DateFormat), req.OrderID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookSlot: failed to reserve capacity: %v", err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		// Фаза 2: запись бронирования в той же транзакции
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("BookSlot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: booked slot=%s for order=%s, booking=%s, confirmation=%s, weight=%s",
		booking.SlotID, req.OrderID, bookingID, confirmationCode, totalWeight.String())

	return &Response{
		Success:          true,
		BookingID:        bookingID,
		ConfirmationCode: confirmationCode,
		TotalWeight:      totalWeight,
		DeliveryDetails: DeliveryDetails{
			SlotName:          req.SelectedSlot.SlotName,
			DeliveryDate:      req.SelectedSlot.DeliveryDate,
			TimeRange:         fmt.Sprintf("%s - %s", req.SelectedSlot.StartTime, req.SelectedSlot.EndTime),
			EstimatedDelivery: req.SelectedSlot.EstimatedDeliveryTime,
			DeliveryCharge:    req.SelectedSlot.DeliveryCharge,
			Area:              req.SelectedSlot.Area,
			City:              req.SelectedSlot.City,
		},
		Message: fmt.Sprintf("Delivery slot booked successfully. Confirmation code: %s", confirmationCode),
	}, nil
}

func validateRequest(req *Request) error {
	if req.OrderID == "" {
		return fmt.Errorf("%w: orderId is required", ErrInvalidInput)
	}
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if req.CustomerAddress.Pincode == "" {
		return fmt.Errorf("%w: customer address pincode is required", ErrInvalidInput)
	}
	if req.SelectedSlot.SlotID == "" {
		return fmt.Errorf("%w: selected slot is required", ErrInvalidInput)
	}
	if req.SelectedSlot.DeliveryDate.IsZero() {
		return fmt.Errorf("%w: delivery date is required", ErrInvalidInput)
	}
	if !domain.IsKnownDeliveryType(req.SelectedSlot.DeliveryType) {
		return fmt.Errorf("%w: unknown delivery type %q", ErrInvalidInput, req.SelectedSlot.DeliveryType)
	}
	return nil
}
