package check_serviceability

import (
	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// Request модель запроса проверки обслуживаемости пинкода
type Request struct {
	Pincode string
}

// Response агрегат по всем конфигурациям пинкода.
// Serviceable=false с Message - штатный бизнес-исход.
type Response struct {
	Success         bool
	Serviceable     bool
	Pincode         string
	Area            string
	City            string
	Zone            string
	DeliveryTypes   []domain.DeliveryType
	ProductTypes    []string
	MinimumCharges  map[string]decimal.Decimal // тип товара -> минимальная стоимость доставки
	SpecialServices []string
	Message         string
}
