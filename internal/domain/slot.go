package domain

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// SlotStatus represents the status of a half-day time slot
type SlotStatus string

const (
	SlotAvailable            SlotStatus = "available"
	SlotUnavailable          SlotStatus = "unavailable"
	SlotOnsiteMeasurement    SlotStatus = "onsite-measurement"
	SlotInstallation         SlotStatus = "installation"
	SlotMaintenance          SlotStatus = "maintenance"
	SlotConfirmedMeasurement SlotStatus = "confirmed-measurement"
	SlotConfirmedInstall     SlotStatus = "confirmed-installation"
	SlotConfirmedMaintenance SlotStatus = "confirmed-maintenance"

	// SlotNone is a virtual status meaning "no record for this period".
	// It is never stored: upserting it deletes the record instead.
	SlotNone SlotStatus = "no-slot"
)

// Period represents a bookable half-day period
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"

	// PeriodEvening is a legacy value that still occurs in old records.
	// It is accepted when reading but is not producible through slot
	// creation or admin edits.
	PeriodEvening Period = "evening"
)

// TimeSlot represents one bookable half-day period on a specific date.
// At most one TimeSlot exists per (date, period) pair.
type TimeSlot struct {
	ID              string           `json:"id"`
	Date            types.DateString `json:"date"`
	Period          Period           `json:"time"`
	Status          SlotStatus       `json:"status"`
	MaxBookings     int              `json:"maxBookings"`
	CurrentBookings int              `json:"currentBookings"`
	CreatedAt       time.Time        `json:"createdAt"`
	ConfirmedAt     *time.Time       `json:"confirmedAt,omitempty"`
}

// IsBookable returns true if the slot can be picked by a customer
func (s *TimeSlot) IsBookable() bool {
	return s.Status == SlotAvailable
}

// IsConfirmed returns true if the slot holds a confirmed appointment status
func (s *TimeSlot) IsConfirmed() bool {
	return s.Status.IsConfirmed()
}

// IsConfirmed returns true for the confirmed-* statuses
func (s SlotStatus) IsConfirmed() bool {
	switch s {
	case SlotConfirmedMeasurement, SlotConfirmedInstall, SlotConfirmedMaintenance:
		return true
	default:
		return false
	}
}

// ConfirmedVariant maps a pre-confirmation status to the confirmed-* status
// an appointment confirmation transitions the slot into. The mapping is total:
// statuses without a dedicated variant confirm as a measurement visit, and
// already-confirmed statuses map to themselves.
func (s SlotStatus) ConfirmedVariant() SlotStatus {
	switch s {
	case SlotOnsiteMeasurement:
		return SlotConfirmedMeasurement
	case SlotInstallation:
		return SlotConfirmedInstall
	case SlotMaintenance:
		return SlotConfirmedMaintenance
	case SlotConfirmedMeasurement, SlotConfirmedInstall, SlotConfirmedMaintenance:
		return s
	default:
		return SlotConfirmedMeasurement
	}
}

// ParseSlotStatus validates a raw status value, including the virtual no-slot
func ParseSlotStatus(s string) (SlotStatus, bool) {
	status := SlotStatus(s)
	switch status {
	case SlotAvailable, SlotUnavailable, SlotOnsiteMeasurement, SlotInstallation,
		SlotMaintenance, SlotConfirmedMeasurement, SlotConfirmedInstall,
		SlotConfirmedMaintenance, SlotNone:
		return status, true
	default:
		return "", false
	}
}

// IsAdminSettable returns true for statuses staff may set directly.
// The confirmed-* statuses are reachable only through appointment confirmation.
func (s SlotStatus) IsAdminSettable() bool {
	switch s {
	case SlotAvailable, SlotUnavailable, SlotOnsiteMeasurement, SlotInstallation,
		SlotMaintenance, SlotNone:
		return true
	default:
		return false
	}
}

// ParsePeriod validates a raw period value
// allowLegacy controls whether the legacy evening value is accepted
func ParsePeriod(s string, allowLegacy bool) (Period, bool) {
	period := Period(s)
	switch period {
	case PeriodMorning, PeriodAfternoon:
		return period, true
	case PeriodEvening:
		if allowLegacy {
			return period, true
		}
		return "", false
	default:
		return "", false
	}
}

// BookablePeriods периоды, в которых создаются слоты
var BookablePeriods = []Period{PeriodMorning, PeriodAfternoon}
