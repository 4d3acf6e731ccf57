package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodIsValid(t *testing.T) {
	assert.True(t, PeriodAM.IsValid())
	assert.True(t, PeriodPM.IsValid())
	assert.False(t, Period("").IsValid())
	assert.False(t, Period("am").IsValid())
	assert.False(t, Period("EVENING").IsValid())
}

func TestHearingOutcomeIsValid(t *testing.T) {
	for _, outcome := range []HearingOutcome{OutcomeSettled, OutcomeUnresolved, OutcomeDismissed, OutcomeEscalated} {
		assert.True(t, outcome.IsValid(), "outcome %q", outcome)
	}

	assert.False(t, HearingOutcome("").IsValid())
	assert.False(t, HearingOutcome("won").IsValid())
}

func TestSummonScheduleStatePredicates(t *testing.T) {
	tests := []struct {
		status   ScheduleStatus
		active   bool
		terminal bool
	}{
		{ScheduleStatusActive, true, false},
		{ScheduleStatusSuperseded, false, false},
		{ScheduleStatusClosed, false, true},
		{ScheduleStatusVoid, false, true},
	}

	for _, tt := range tests {
		s := &SummonSchedule{Status: tt.status}
		assert.Equal(t, tt.active, s.IsActive(), "status %s", tt.status)
		assert.Equal(t, tt.terminal, s.IsTerminal(), "status %s", tt.status)
	}
}

func TestSummonScheduleSlotKey(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s := &SummonSchedule{HearingDate: date, ServiceID: 2, Period: PeriodPM}

	key := s.SlotKey()

	assert.Equal(t, date, key.Date)
	assert.Equal(t, int64(2), key.ServiceID)
	assert.Equal(t, PeriodPM, key.Period)
}

func TestRequestStatusIsSchedulable(t *testing.T) {
	assert.True(t, RequestStatusPending.IsSchedulable())
	assert.True(t, RequestStatusOngoing.IsSchedulable())
	assert.False(t, RequestStatusResolved.IsSchedulable())
	assert.False(t, RequestStatusClosed.IsSchedulable())
}

func TestStatusForOutcome(t *testing.T) {
	assert.Equal(t, RequestStatusResolved, StatusForOutcome(OutcomeSettled))
	assert.Equal(t, RequestStatusClosed, StatusForOutcome(OutcomeUnresolved))
	assert.Equal(t, RequestStatusClosed, StatusForOutcome(OutcomeDismissed))
	assert.Equal(t, RequestStatusClosed, StatusForOutcome(OutcomeEscalated))
}
