package domain

import "time"

// Period represents the half-day part of a slot
type Period string

const (
	PeriodAM Period = "AM"
	PeriodPM Period = "PM"
)

// Periods is the fixed order of periods within a day
var Periods = []Period{PeriodAM, PeriodPM}

// IsValid returns true if the period is one of the known values
func (p Period) IsValid() bool {
	return p == PeriodAM || p == PeriodPM
}

// SlotKey identifies a single bookable unit: one service, one date, one half-day period
type SlotKey struct {
	Date      time.Time
	ServiceID int64
	Period    Period
}

// Slot represents the stored state of a bookable unit
type Slot struct {
	Date      time.Time
	ServiceID int64
	Period    Period
	Booked    bool
	UpdatedAt time.Time
}

// Key returns the identifying triple of the slot
func (s *Slot) Key() SlotKey {
	return SlotKey{Date: s.Date, ServiceID: s.ServiceID, Period: s.Period}
}

// Service represents an immutable bookable offering (a hearing track or a weekly service)
type Service struct {
	ID        int64
	Code      string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// ReservationHandle identifies a slot held by a successful reservation.
// The token makes two reservations of the same triple distinguishable across
// a release/re-reserve cycle.
type ReservationHandle struct {
	Token     string
	Date      time.Time
	ServiceID int64
	Period    Period
}
