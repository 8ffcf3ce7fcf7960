package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	availabilityRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/availability"
	configRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/slotconfig"
)

// UseCase use case получения доступных слотов доставки для пинкода и набора
// типов товаров. Чистый путь чтения по двум хранилищам, без побочных эффектов.
type UseCase struct {
	configRepo       ConfigRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:       configRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дефолты: тип доставки next_day, дата - завтра (UTC)
	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = domain.DeliveryNextDay
	}

	deliveryDate := uc.resolveDeliveryDate(req.DeliveryDate)

	// 3. Определяем основной тип товара (PERISHABLE приоритетен - у
	// скоропортящихся более строгие конфигурации). Заказ с несколькими
	// типами обслуживается одной конфигурацией, без слияния.
	productType := domain.PrimaryProductType(req.ProductTypes)

	uc.logger.Info("GetAvailableSlots: pincode=%s, productType=%s, date=%s, deliveryType=%s",
		req.Pincode, productType, deliveryDate.Format(domain.DateFormat), deliveryType)

	// 4. Получаем конфигурацию слотов для пинкода и типа товара.
	// Отсутствие конфигурации - штатный бизнес-исход "не обслуживается",
	// а не ошибка: возвращаем Success=false с сообщением.
	cfg, err := uc.configRepo.GetByPincodeAndProductType(ctx, req.Pincode, productType)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Info("GetAvailableSlots: pincode=%s productType=%s is not serviceable", req.Pincode, productType)
			return &Response{
				Success:        false,
				Message:        fmt.Sprintf("No delivery slots available for pincode %s", req.Pincode),
				Pincode:        req.Pincode,
				DeliveryDate:   deliveryDate,
				DeliveryType:   deliveryType,
				ProductType:    productType,
				AvailableSlots: []SlotOffer{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get slot configuration: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot configuration: %v", ErrInternal, err)
	}

	dayOfWeek := domain.WeekdayTag(deliveryDate)

	// 5. Фильтруем слоты конфигурации и сверяем с живой доступностью
	offers := make([]SlotOffer, 0, len(cfg.TimeSlots))
	for _, slot := range cfg.TimeSlots {
		// Слот не работает в этот день недели
		if !slot.AvailableOn(dayOfWeek) {
			continue
		}

		// Конфигурация не поддерживает запрошенный тип доставки
		if !cfg.SupportsDeliveryType(deliveryType) {
			continue
		}

		avail, err := uc.availabilityRepo.GetBySlotKey(ctx, req.Pincode, slot.SlotID, deliveryDate, deliveryType)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				// Счетчик на эту дату не заведен - слот не предлагается
				continue
			}
			uc.logger.Error("GetAvailableSlots: failed to get availability for slot=%s: %v", slot.SlotID, err)
			return nil, fmt.Errorf("%w: failed to get slot availability: %v", ErrInternal, err)
		}

		if !avail.IsBookable() {
			continue
		}

		offer, err := buildOffer(cfg, slot, avail)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to build offer for slot=%s: %v", slot.SlotID, err)
			return nil, fmt.Errorf("%w: failed to build slot offer: %v", ErrInternal, err)
		}
		offers = append(offers, offer)
	}

	// 6. Сортируем по времени начала
	sortOffersByStartTime(offers)

	uc.logger.Info("GetAvailableSlots: %d slots available for pincode=%s date=%s type=%s",
		len(offers), req.Pincode, deliveryDate.Format(domain.DateFormat), deliveryType)

	return &Response{
		Success:        true,
		Pincode:        req.Pincode,
		DeliveryDate:   deliveryDate,
		DeliveryType:   deliveryType,
		ProductType:    productType,
		AvailableSlots: offers,
	}, nil
}

// resolveDeliveryDate возвращает запрошенную дату доставки либо завтра (UTC)
func (uc *UseCase) resolveDeliveryDate(requested *time.Time) time.Time {
	if requested != nil {
		return time.Date(requested.Year(), requested.Month(), requested.Day(), 0, 0, 0, 0, time.UTC)
	}
	now := uc.timeProvider.Now().UTC()
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)
}
