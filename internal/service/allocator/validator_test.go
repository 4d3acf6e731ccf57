package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/ptr"
)

func TestValidateParams(t *testing.T) {
	valid := ReserveParams{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ServiceID: 1,
		Period:    domain.PeriodAM,
		RequestID: 42,
	}

	tests := []struct {
		name    string
		mutate  func(p *ReserveParams)
		wantErr bool
	}{
		{"valid", func(p *ReserveParams) {}, false},
		{"zero request ID", func(p *ReserveParams) { p.RequestID = 0 }, true},
		{"negative request ID", func(p *ReserveParams) { p.RequestID = -1 }, true},
		{"zero service ID", func(p *ReserveParams) { p.ServiceID = 0 }, true},
		{"zero date", func(p *ReserveParams) { p.Date = time.Time{} }, true},
		{"unknown period", func(p *ReserveParams) { p.Period = "NOON" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := validateParams(p)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSlotFree(t *testing.T) {
	assert.ErrorIs(t, checkSlotFree(nil), ErrSlotTaken)
	assert.ErrorIs(t, checkSlotFree(&domain.Slot{Booked: true}), ErrSlotTaken)
	assert.NoError(t, checkSlotFree(&domain.Slot{Booked: false}))
}

func TestCheckNoActiveHearing(t *testing.T) {
	active := &domain.SummonSchedule{ID: 7, Status: domain.ScheduleStatusActive}

	assert.NoError(t, checkNoActiveHearing(nil, nil))
	assert.ErrorIs(t, checkNoActiveHearing(active, nil), ErrAlreadyScheduled)

	// The schedule being moved during a reschedule does not count as a conflict
	assert.NoError(t, checkNoActiveHearing(active, ptr.Ptr(int64(7))))
	assert.ErrorIs(t, checkNoActiveHearing(active, ptr.Ptr(int64(8))), ErrAlreadyScheduled)
}

func TestCheckDateNotPast(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	assert.ErrorIs(t, checkDateNotPast(now.AddDate(0, 0, -1), now), ErrDateInPast)
	assert.NoError(t, checkDateNotPast(now.AddDate(0, 0, 1), now))

	// Same calendar day is bookable regardless of the time of day
	morning := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, checkDateNotPast(morning, now))

	// A clock just past local midnight must not push a UTC-parsed date into
	// the past while the UTC day is still the same.
	east := time.FixedZone("UTC+10", 10*60*60)
	lateClock := time.Date(2025, 3, 11, 0, 30, 0, 0, east) // 2025-03-10 14:30 UTC
	assert.NoError(t, checkDateNotPast(morning, lateClock))
}
