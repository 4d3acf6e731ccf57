package domain

import "time"

// ScheduleStatus represents the lifecycle state of a summon schedule record
type ScheduleStatus string

const (
	ScheduleStatusActive     ScheduleStatus = "active"
	ScheduleStatusSuperseded ScheduleStatus = "superseded"
	ScheduleStatusClosed     ScheduleStatus = "closed"
	// ScheduleStatusVoid marks a record created inside a scheduling saga whose later
	// steps failed. The row is kept for audit, the slot it referenced was released.
	ScheduleStatusVoid ScheduleStatus = "void"
)

// HearingOutcome represents the recorded result of a closed hearing
type HearingOutcome string

const (
	OutcomeSettled    HearingOutcome = "settled"
	OutcomeUnresolved HearingOutcome = "unresolved"
	OutcomeDismissed  HearingOutcome = "dismissed"
	OutcomeEscalated  HearingOutcome = "escalated"
)

// IsValid returns true if the outcome is one of the known values
func (o HearingOutcome) IsValid() bool {
	switch o {
	case OutcomeSettled, OutcomeUnresolved, OutcomeDismissed, OutcomeEscalated:
		return true
	}
	return false
}

// SummonSchedule binds a dispute case to one slot. A reschedule creates a new
// record and supersedes the old one, history rows are never mutated in place.
type SummonSchedule struct {
	ID             int64
	RequestID      int64
	ServiceID      int64
	HearingDate    time.Time
	Period         Period
	MediationLevel int
	Reason         string
	Status         ScheduleStatus

	IsRescheduled  bool
	PredecessorID  *int64
	Outcome        *HearingOutcome
	IdempotencyKey string

	// Denormalized data for history
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the schedule currently holds its slot
func (s *SummonSchedule) IsActive() bool {
	return s.Status == ScheduleStatusActive
}

// IsTerminal returns true if the schedule reached a final state
func (s *SummonSchedule) IsTerminal() bool {
	return s.Status == ScheduleStatusClosed || s.Status == ScheduleStatusVoid
}

// SlotKey returns the slot triple this schedule holds
func (s *SummonSchedule) SlotKey() SlotKey {
	return SlotKey{Date: s.HearingDate, ServiceID: s.ServiceID, Period: s.Period}
}

// RequestStatus represents the lifecycle status of the external dispute case.
// The scheduler advances this status but does not own the full lifecycle.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusOngoing  RequestStatus = "ongoing"
	RequestStatusResolved RequestStatus = "resolved"
	RequestStatusClosed   RequestStatus = "closed"
)

// IsSchedulable returns true if a hearing may still be scheduled for the request
func (s RequestStatus) IsSchedulable() bool {
	return s == RequestStatusPending || s == RequestStatusOngoing
}

// StatusForOutcome maps a hearing outcome to the request status it cascades to
func StatusForOutcome(outcome HearingOutcome) RequestStatus {
	if outcome == OutcomeSettled {
		return RequestStatusResolved
	}
	return RequestStatusClosed
}
