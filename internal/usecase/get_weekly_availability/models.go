package get_weekly_availability

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// Request use case input: the Monday (or any chosen anchor day) of the week
type Request struct {
	WeekStart time.Time
}

// Response the weekly availability grid, one entry per day of the week
type Response struct {
	WeekStart time.Time
	Days      []DaySchedule
}

// DaySchedule all services of one calendar date with their period states
type DaySchedule struct {
	Date     time.Time
	Services []ServiceSlots
}

// ServiceSlots the AM/PM slot states of one service on one date
type ServiceSlots struct {
	ServiceID   int64
	ServiceCode string
	ServiceName string
	AM          SlotState
	PM          SlotState
}

// SlotState availability of one slot
type SlotState struct {
	Booked bool
}

// stateFor returns the slot state of the given period
func (s *ServiceSlots) stateFor(period domain.Period) *SlotState {
	if period == domain.PeriodAM {
		return &s.AM
	}
	return &s.PM
}
