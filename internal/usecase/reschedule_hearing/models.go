package reschedule_hearing

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// Request use case input for moving an active hearing to a new slot
type Request struct {
	ScheduleID int64         // schedule record being moved
	ServiceID  int64         // new hearing track / service ID
	Date       time.Time     // new hearing date
	Period     domain.Period // new period
	Reason     *string       // optional new reason, old one is carried when nil
}

// Response use case output with the successor schedule
type Response struct {
	ID             int64
	RequestID      int64
	ServiceID      int64
	ServiceName    string
	HearingDate    time.Time
	Period         domain.Period
	MediationLevel int
	Reason         string
	Status         string
	IsRescheduled  bool
	PredecessorID  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
