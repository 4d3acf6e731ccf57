package domain

// Mediation level bounds. Levels follow the barangay summon ladder:
// first summon, second summon, final summon before escalation.
const (
	MinMediationLevel = 1
	MaxMediationLevel = 3
)

// Named mediation levels
const (
	LevelFirstSummon  = 1
	LevelSecondSummon = 2
	LevelFinalSummon  = 3
)

// Business validation constants
const (
	MaxReasonLength  = 500
	MaxOutcomeLength = 50
	DaysPerWeek      = 7
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveScheduleStatuses statuses whose records currently hold a slot
var ActiveScheduleStatuses = []ScheduleStatus{
	ScheduleStatusActive,
}

// InactiveScheduleStatuses statuses whose records no longer hold a slot.
// Used when filtering history reads.
var InactiveScheduleStatuses = []ScheduleStatus{
	ScheduleStatusSuperseded,
	ScheduleStatusClosed,
	ScheduleStatusVoid,
}
