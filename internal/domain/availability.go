package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlotAvailability is the live capacity counter for one slot on one date and
// delivery type. Counters only ever move towards FULL: there is no
// cancellation path, so AvailableSlots and AvailableWeight are monotonically
// non-increasing for a given key.
type SlotAvailability struct {
	Pincode         string
	SlotID          string
	Date            time.Time
	DeliveryType    DeliveryType
	MaxCapacity     int
	CurrentBookings int
	AvailableSlots  int
	MaxWeight       decimal.Decimal
	CurrentWeight   decimal.Decimal
	AvailableWeight decimal.Decimal
	Status          AvailabilityStatus
	LastUpdated     time.Time
}

// IsBookable returns true if the slot instance can still accept a booking
func (a *SlotAvailability) IsBookable() bool {
	return a.Status == AvailabilityAvailable && a.AvailableSlots > 0
}
