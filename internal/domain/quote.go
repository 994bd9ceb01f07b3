package domain

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// QuoteType distinguishes the two kinds of quote requests the site collects
type QuoteType string

const (
	// QuoteOnsite is an onsite visit request tied to a calendar slot
	QuoteOnsite QuoteType = "onsite"

	// QuoteSelfMeasurement is a quote computed from customer-provided sizes;
	// it has no calendar footprint and the scheduling core ignores it
	QuoteSelfMeasurement QuoteType = "self-measurement"
)

// Quote represents a customer quote request. Quotes of type onsite are
// appointments: they reference a (date, period) slot and carry a confirmation
// lifecycle driven by staff.
type Quote struct {
	ID   string    `json:"id"`
	Type QuoteType `json:"type"`

	// Either UserID or Email identifies the customer. Older records carry
	// only an email, so lookups try UserID first and fall back to Email.
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`

	PreferredDate types.DateString `json:"preferredDate,omitempty"`
	PreferredTime Period           `json:"preferredTime,omitempty"`

	// Booking metadata, opaque to the scheduling core
	PropertyType string `json:"propertyType,omitempty"`
	RoomCount    int    `json:"roomCount,omitempty"`
	Notes        string `json:"notes,omitempty"`

	Confirmed   bool       `json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsAppointment returns true for quotes that occupy a calendar slot
func (q *Quote) IsAppointment() bool {
	return q.Type == QuoteOnsite
}

// MatchesPeriod returns true if the appointment targets the given (date, period)
func (q *Quote) MatchesPeriod(date types.DateString, period Period) bool {
	return q.PreferredDate == date && q.PreferredTime == period
}

// MatchesUser returns true if the quote belongs to the given customer
// reference, checking UserID first and Email second
func (q *Quote) MatchesUser(ref string) bool {
	if q.UserID != "" && q.UserID == ref {
		return true
	}
	return q.Email != "" && q.Email == ref
}

// CustomerRef returns the best available customer reference for lookups
func (q *Quote) CustomerRef() string {
	if q.UserID != "" {
		return q.UserID
	}
	return q.Email
}
