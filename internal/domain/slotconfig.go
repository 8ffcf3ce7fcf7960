package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// TimeSlot is one named delivery window inside a slot configuration.
// JSON tags match the persisted JSONB document shape.
type TimeSlot struct {
	SlotID         string           `json:"slotId"`
	Name           string           `json:"name"`
	StartTime      types.TimeString `json:"startTime"`
	EndTime        types.TimeString `json:"endTime"`
	MaxCapacity    int              `json:"maxCapacity"`
	DeliveryCharge decimal.Decimal  `json:"deliveryCharge"`
	DaysAvailable  []Weekday        `json:"daysAvailable"`
}

// AvailableOn returns true if the slot runs on the given weekday
func (s *TimeSlot) AvailableOn(day Weekday) bool {
	for _, d := range s.DaysAvailable {
		if d == day {
			return true
		}
	}
	return false
}

// SpecialRules handling rules attached to a slot configuration
type SpecialRules struct {
	TemperatureControl   bool             `json:"temperatureControl"`
	QualityChecks        bool             `json:"qualityChecks"`
	MaxDeliveryTimeHours int              `json:"maxDeliveryTime,omitempty"`
	SameDayCutoff        types.TimeString `json:"sameDayCutoff,omitempty"`
}

// SlotConfiguration is the per-pincode, per-product-type delivery slot
// template. Created by administrative setup; read-only on the selection path.
// Invariant: SlotID is unique within TimeSlots.
type SlotConfiguration struct {
	ID            int64
	Pincode       string
	SlotType      string
	ProductType   string
	Area          string
	City          string
	Zone          string
	DeliveryTypes []DeliveryType
	TimeSlots     []TimeSlot
	SpecialRules  SpecialRules
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SupportsDeliveryType returns true if the configuration serves the given delivery type
func (c *SlotConfiguration) SupportsDeliveryType(dt DeliveryType) bool {
	for _, t := range c.DeliveryTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// MinimumCharge returns the cheapest delivery charge across the
// configuration's time slots, or zero if there are none
func (c *SlotConfiguration) MinimumCharge() decimal.Decimal {
	if len(c.TimeSlots) == 0 {
		return decimal.Zero
	}
	min := c.TimeSlots[0].DeliveryCharge
	for _, slot := range c.TimeSlots[1:] {
		if slot.DeliveryCharge.LessThan(min) {
			min = slot.DeliveryCharge
		}
	}
	return min
}

// SpecialServiceLabels returns the customer-facing labels derived from the
// configuration's special rules
func (r SpecialRules) SpecialServiceLabels() []string {
	labels := make([]string, 0, 2)
	if r.TemperatureControl {
		labels = append(labels, "Temperature Controlled Delivery")
	}
	if r.QualityChecks {
		labels = append(labels, "Quality Assured Delivery")
	}
	return labels
}
