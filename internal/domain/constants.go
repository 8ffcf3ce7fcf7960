package domain

import (
	"strings"
	"time"
)

// DeliveryType is a coarse lead-time category independent of the time window
type DeliveryType string

const (
	DeliverySameDay   DeliveryType = "same_day"
	DeliveryNextDay   DeliveryType = "next_day"
	DeliveryScheduled DeliveryType = "scheduled"
)

// KnownDeliveryTypes перечень поддерживаемых типов доставки
var KnownDeliveryTypes = []DeliveryType{
	DeliverySameDay,
	DeliveryNextDay,
	DeliveryScheduled,
}

// IsKnownDeliveryType returns true if dt is one of the supported delivery types
func IsKnownDeliveryType(dt DeliveryType) bool {
	for _, known := range KnownDeliveryTypes {
		if dt == known {
			return true
		}
	}
	return false
}

// Weekday is a 3-letter uppercase weekday tag (MON, TUE, ...)
type Weekday string

// WeekdayTag returns the weekday tag for a date
func WeekdayTag(t time.Time) Weekday {
	return Weekday(strings.ToUpper(t.Format("Mon")))
}

// AvailabilityStatus availability status of a slot instance
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "AVAILABLE"
	AvailabilityFull      AvailabilityStatus = "FULL"
)

// BookingStatus status of a slot booking
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingDelivered BookingStatus = "DELIVERED"
)

// Product type tags
const (
	ProductTypePerishable = "PERISHABLE"
	ProductTypeGeneral    = "GENERAL"
)

// SlotTypeStandard is the only slot type currently provisioned
const SlotTypeStandard = "STANDARD"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ConfirmationCodePrefix prefix for human-readable booking confirmation codes
const ConfirmationCodePrefix = "SLOT-"

// AutoSelectHorizonDays rolling search horizon for automatic slot selection
const AutoSelectHorizonDays = 3

// MaxAlternativeSlots number of alternative offers returned alongside the selected one
const MaxAlternativeSlots = 4

// PrimaryProductType resolves the configuration lookup key for a set of
// product types. Perishables have stricter slot configurations, so PERISHABLE
// wins whenever present; otherwise the first element is used.
func PrimaryProductType(productTypes []string) string {
	for _, pt := range productTypes {
		if pt == ProductTypePerishable {
			return ProductTypePerishable
		}
	}
	if len(productTypes) > 0 {
		return productTypes[0]
	}
	return ProductTypeGeneral
}
