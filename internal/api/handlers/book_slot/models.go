package book_slot

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	bookSlot "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/book_slot"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// AddressRequest HTTP модель адреса клиента
type AddressRequest struct {
	Pincode string `json:"pincode"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// ProductLineRequest HTTP модель строки заказа
type ProductLineRequest struct {
	GroupID     string          `json:"groupId"`
	VariantID   string          `json:"variantId"`
	ProductType string          `json:"productType"`
	Quantity    int             `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit"`
}

// SelectedSlotRequest HTTP модель выбранного слота
type SelectedSlotRequest struct {
	SlotID                string          `json:"slotId"`
	SlotName              string          `json:"slotName"`
	StartTime             string          `json:"startTime"` // "10:00"
	EndTime               string          `json:"endTime"`
	DeliveryCharge        decimal.Decimal `json:"deliveryCharge"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime"`
	DeliveryDate          string          `json:"deliveryDate"` // "2026-08-30"
	DeliveryType          string          `json:"deliveryType"`
	Area                  string          `json:"area"`
	City                  string          `json:"city"`
}

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	OrderID         string               `json:"orderId"`
	CustomerAddress AddressRequest       `json:"customerAddress"`
	CustomerPhone   string               `json:"customerPhone"`
	Products        []ProductLineRequest `json:"products"`
	SelectedSlot    SelectedSlotRequest  `json:"selectedSlot"`
}

// DeliveryDetailsResponse HTTP модель деталей доставки
type DeliveryDetailsResponse struct {
	SlotName          string          `json:"slotName"`
	DeliveryDate      string          `json:"deliveryDate"`
	TimeRange         string          `json:"timeRange"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	DeliveryCharge    decimal.Decimal `json:"deliveryCharge"`
	Area              string          `json:"area"`
	City              string          `json:"city"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success          bool                    `json:"success"`
	BookingID        string                  `json:"bookingId"`
	ConfirmationCode string                  `json:"confirmationCode"`
	TotalWeight      decimal.Decimal         `json:"totalWeight"`
	DeliveryDetails  DeliveryDetailsResponse `json:"deliveryDetails"`
	Message          string                  `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени слота)
func (r *BookSlotRequest) ToUseCaseRequest(customerID string) (*bookSlot.Request, error) {
	deliveryDate, err := time.Parse(domain.DateFormat, r.SelectedSlot.DeliveryDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.SelectedSlot.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.SelectedSlot.EndTime)
	if err != nil {
		return nil, err
	}
	estimatedDelivery, err := types.NewTimeStringFromString(r.SelectedSlot.EstimatedDeliveryTime)
	if err != nil {
		return nil, err
	}

	products := make([]domain.OrderLine, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.OrderLine{
			GroupID:     p.GroupID,
			VariantID:   p.VariantID,
			ProductType: p.ProductType,
			Quantity:    p.Quantity,
			Weight:      p.Weight,
			Unit:        p.Unit,
		})
	}

	return &bookSlot.Request{
		OrderID:    r.OrderID,
		CustomerID: customerID,
		CustomerAddress: domain.Address{
			Pincode: r.CustomerAddress.Pincode,
			Line:    r.CustomerAddress.Address,
			City:    r.CustomerAddress.City,
		},
		CustomerPhone: r.CustomerPhone,
		Products:      products,
		SelectedSlot: bookSlot.SelectedSlot{
			SlotID:                r.SelectedSlot.SlotID,
			SlotName:              r.SelectedSlot.SlotName,
			StartTime:             startTime,
			EndTime:               endTime,
			DeliveryCharge:        r.SelectedSlot.DeliveryCharge,
			EstimatedDeliveryTime: estimatedDelivery,
			DeliveryDate:          deliveryDate,
			DeliveryType:          domain.DeliveryType(r.SelectedSlot.DeliveryType),
			Area:                  r.SelectedSlot.Area,
			City:                  r.SelectedSlot.City,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		Success:          resp.Success,
		BookingID:        resp.BookingID,
		ConfirmationCode: resp.ConfirmationCode,
		TotalWeight:      resp.TotalWeight,
		DeliveryDetails: DeliveryDetailsResponse{
			SlotName:          resp.DeliveryDetails.SlotName,
			DeliveryDate:      resp.DeliveryDetails.DeliveryDate.Format(domain.DateFormat),
			TimeRange:         resp.DeliveryDetails.TimeRange,
			EstimatedDelivery: resp.DeliveryDetails.EstimatedDelivery.String(),
			DeliveryCharge:    resp.DeliveryDetails.DeliveryCharge,
			Area:              resp.DeliveryDetails.Area,
			City:              resp.DeliveryDetails.City,
		},
		Message: resp.Message,
	}
}
