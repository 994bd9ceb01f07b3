package domain

import (
	"time"

	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// PeriodView is the reconciled display state of one (date, period) cell.
// Confirmation dominates the raw slot status: a confirmed appointment forces
// the effective status into its confirmed-* form and locks the cell against
// admin edits. A pending appointment is only attached as an overlay and never
// changes the effective status.
type PeriodView struct {
	Period Period `json:"period"`

	// EffectiveStatus is the authoritative display status after reconciling
	// the slot record with the appointment ledger. SlotNone when no record
	// exists and no confirmed appointment occupies the period.
	EffectiveStatus SlotStatus `json:"effectiveStatus"`

	// Locked is true when a confirmed appointment occupies the period;
	// admin edits on a locked cell must be rejected.
	Locked bool `json:"locked"`

	Slot         *TimeSlot `json:"slot,omitempty"`
	Appointment  *Quote    `json:"appointment,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
}

// DayCell is the presentation unit of the calendar grid: one calendar date
// with its two half-day period views. Out-of-month cells carry the day number
// only and no computed state.
type DayCell struct {
	Date      types.DateString `json:"date"`
	Day       int              `json:"day"`
	InMonth   bool             `json:"inMonth"`
	Morning   *PeriodView      `json:"morning,omitempty"`
	Afternoon *PeriodView      `json:"afternoon,omitempty"`
}

// GridCells количество ячеек календарной сетки: 6 недель по 7 дней
const GridCells = 42

// MonthRef is the explicit calendar view state: which (year, month) the
// calendar is showing. It replaces ambient globals; navigation returns a new
// value instead of mutating shared state.
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Next returns the view state shifted one month forward
func (m MonthRef) Next() MonthRef {
	if m.Month == time.December {
		return MonthRef{Year: m.Year + 1, Month: time.January}
	}
	return MonthRef{Year: m.Year, Month: m.Month + 1}
}

// Previous returns the view state shifted one month back
func (m MonthRef) Previous() MonthRef {
	if m.Month == time.January {
		return MonthRef{Year: m.Year - 1, Month: time.December}
	}
	return MonthRef{Year: m.Year, Month: m.Month - 1}
}

// FirstDay returns midnight local time of the 1st of the month
func (m MonthRef) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// GridStart returns the Sunday on or before the 1st of the month -
// the first cell of the 42-cell grid
func (m MonthRef) GridStart() time.Time {
	first := m.FirstDay()
	return first.AddDate(0, 0, -int(first.Weekday()))
}
