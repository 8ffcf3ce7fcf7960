package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// Address is a customer delivery address.
// JSON tags match the persisted JSONB document shape.
type Address struct {
	Pincode string `json:"pincode"`
	Line    string `json:"address"`
	City    string `json:"city,omitempty"`
}

// OrderLine is one product line of an order, as supplied by the caller
type OrderLine struct {
	GroupID     string          `json:"groupId"`
	VariantID   string          `json:"variantId"`
	ProductType string          `json:"productType,omitempty"`
	Quantity    int             `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Unit        string          `json:"unit"`
}

// SlotSnapshot denormalized slot display details captured at booking time
type SlotSnapshot struct {
	SlotName          string           `json:"slotName"`
	StartTime         types.TimeString `json:"startTime"`
	EndTime           types.TimeString `json:"endTime"`
	EstimatedDelivery types.TimeString `json:"estimatedDelivery"`
}

// SlotBooking is a persisted reservation tying one order to one slot
// instance. Created once at booking time; rider assignment and delivery
// completion belong to external workflows.
type SlotBooking struct {
	BookingID        string
	OrderID          string
	CustomerID       string
	Pincode          string
	SlotID           string
	DeliveryDate     time.Time
	DeliveryType     DeliveryType
	SlotDetails      SlotSnapshot
	CustomerAddress  Address
	CustomerPhone    string
	ProductDetails   []OrderLine
	DeliveryCharge   decimal.Decimal
	TotalWeight      decimal.Decimal
	RiderID          *string
	Status           BookingStatus
	ConfirmationCode string
	BookedAt         time.Time
	DeliveredAt      *time.Time
}

// IsDelivered returns true once the delivery workflow has completed the booking
func (b *SlotBooking) IsDelivered() bool {
	return b.Status == BookingDelivered || b.DeliveredAt != nil
}
