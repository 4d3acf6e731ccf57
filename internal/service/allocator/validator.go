package allocator

import (
	"fmt"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// Booking-conflict rules. Pure functions with no side effects, re-evaluated
// inside the allocator's transaction so decisions are never made on stale reads.

// validateParams checks the shape of a reserve request before touching the store
func validateParams(p ReserveParams) error {
	if p.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}
	if p.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !p.Period.IsValid() {
		return fmt.Errorf("%w: period must be AM or PM", ErrInvalidInput)
	}
	return nil
}

// checkSlotFree rejects booked slots. A nil slot (absent row) is unknown to the
// horizon and treated as unavailable, never as implicitly bookable.
func checkSlotFree(slot *domain.Slot) error {
	if slot == nil || slot.Booked {
		return ErrSlotTaken
	}
	return nil
}

// checkNoActiveHearing enforces one active hearing per request. The schedule
// identified by ignoreScheduleID is exempt, it is the one being moved during
// a reschedule.
func checkNoActiveHearing(active *domain.SummonSchedule, ignoreScheduleID *int64) error {
	if active == nil {
		return nil
	}
	if ignoreScheduleID != nil && active.ID == *ignoreScheduleID {
		return nil
	}
	return ErrAlreadyScheduled
}

// checkDateNotPast rejects dates strictly before the current date. Both sides
// collapse to a UTC day boundary, comparing a wall clock in one zone against a
// date parsed in another flips the answer near midnight.
func checkDateNotPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowUTC := now.UTC()
	nowOnly := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(nowOnly) {
		return ErrDateInPast
	}
	return nil
}
