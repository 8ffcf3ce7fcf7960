package check_serviceability

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// UseCase use case проверки обслуживаемости пинкода: агрегирует все
// конфигурации слотов пинкода (по одной на тип товара) в сводку для
// клиента. Чистое чтение, без мутаций.
type UseCase struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configRepo ConfigRepository, logger Logger) *UseCase {
	return &UseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Execute выполняет use case проверки обслуживаемости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Pincode == "" {
		return nil, fmt.Errorf("%w: pincode is required", ErrInvalidInput)
	}

	uc.logger.Info("CheckServiceability: pincode=%s", req.Pincode)

	configs, err := uc.configRepo.ListByPincode(ctx, req.Pincode)
	if err != nil {
		uc.logger.Error("CheckServiceability: failed to list configurations: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot configurations: %v", ErrInternal, err)
	}

	if len(configs) == 0 {
		uc.logger.Info("CheckServiceability: pincode=%s is not serviceable", req.Pincode)
		return &Response{
			Success:     true,
			Serviceable: false,
			Pincode:     req.Pincode,
			Message:     fmt.Sprintf("Sorry, we do not deliver to pincode %s yet.", req.Pincode),
		}, nil
	}

	resp := &Response{
		Success:         true,
		Serviceable:     true,
		Pincode:         req.Pincode,
		Area:            configs[0].Area,
		City:            configs[0].City,
		Zone:            configs[0].Zone,
		DeliveryTypes:   make([]domain.DeliveryType, 0),
		ProductTypes:    make([]string, 0, len(configs)),
		MinimumCharges:  make(map[string]decimal.Decimal, len(configs)),
		SpecialServices: make([]string, 0),
	}

	for _, cfg := range configs {
		// Объединение типов доставки с сохранением порядка встречи
		for _, dt := range cfg.DeliveryTypes {
			if !containsDeliveryType(resp.DeliveryTypes, dt) {
				resp.DeliveryTypes = append(resp.DeliveryTypes, dt)
			}
		}

		// Объединение типов товаров
		if !containsString(resp.ProductTypes, cfg.ProductType) {
			resp.ProductTypes = append(resp.ProductTypes, cfg.ProductType)
		}

		// Минимальная стоимость доставки по типу товара
		if len(cfg.TimeSlots) > 0 {
			resp.MinimumCharges[cfg.ProductType] = cfg.MinimumCharge()
		}

		// Специальные сервисы из флагов правил
		for _, label := range cfg.SpecialRules.SpecialServiceLabels() {
			if !containsString(resp.SpecialServices, label) {
				resp.SpecialServices = append(resp.SpecialServices, label)
			}
		}
	}

	uc.logger.Info("CheckServiceability: pincode=%s serviceable, %d product types, %d delivery types",
		req.Pincode, len(resp.ProductTypes), len(resp.DeliveryTypes))

	return resp, nil
}

func containsDeliveryType(list []domain.DeliveryType, dt domain.DeliveryType) bool {
	for _, v := range list {
		if v == dt {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
