package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// SlotDetails денормализованный снимок слота на момент бронирования
type SlotDetails struct {
	SlotName          string `json:"slotName"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// BookingResponse модель бронирования для чтения
type BookingResponse struct {
	BookingID        string             `json:"bookingId"`
	OrderID          string             `json:"orderId"`
	CustomerID       string             `json:"customerId"`
	Pincode          string             `json:"pincode"`
	SlotID           string             `json:"slotId"`
	DeliveryDate     string             `json:"deliveryDate"`
	DeliveryType     string             `json:"deliveryType"`
	SlotDetails      SlotDetails        `json:"slotDetails"`
	CustomerAddress  domain.Address     `json:"customerAddress"`
	CustomerPhone    string             `json:"customerPhone"`
	ProductDetails   []domain.OrderLine `json:"productDetails"`
	DeliveryCharge   decimal.Decimal    `json:"deliveryCharge"`
	TotalWeight      decimal.Decimal    `json:"totalWeight"`
	RiderID          *string            `json:"riderId"`
	Status           string             `json:"status"`
	ConfirmationCode string             `json:"confirmationCode"`
	BookedAt         time.Time          `json:"bookedAt"`
	DeliveredAt      *time.Time         `json:"deliveredAt"`
}

// FromDomainBooking конвертирует доменную модель в модель чтения
func FromDomainBooking(b *domain.SlotBooking) *BookingResponse {
	return &BookingResponse{
		BookingID:    b.BookingID,
		OrderID:      b.OrderID,
		CustomerID:   b.CustomerID,
		Pincode:      b.Pincode,
		SlotID:       b.SlotID,
		DeliveryDate: b.DeliveryDate.Format(domain.DateFormat),
		DeliveryType: string(b.DeliveryType),
		SlotDetails: SlotDetails{
			SlotName:          b.SlotDetails.SlotName,
			StartTime:         b.SlotDetails.StartTime.String(),
			EndTime:           b.SlotDetails.EndTime.String(),
			EstimatedDelivery: b.SlotDetails.EstimatedDelivery.String(),
		},
		CustomerAddress:  b.CustomerAddress,
		CustomerPhone:    b.CustomerPhone,
		ProductDetails:   b.ProductDetails,
		DeliveryCharge:   b.DeliveryCharge,
		TotalWeight:      b.TotalWeight,
		RiderID:          b.RiderID,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		BookedAt:         b.BookedAt,
		DeliveredAt:      b.DeliveredAt,
	}
}
