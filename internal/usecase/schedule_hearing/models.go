package schedule_hearing

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// Request use case input for booking a hearing
type Request struct {
	RequestID      int64         // summon request (dispute case) ID
	ServiceID      int64         // hearing track / service ID
	Date           time.Time     // hearing date (date only)
	Period         domain.Period // AM or PM
	MediationLevel int           // escalation stage, 1..3
	Reason         string        // e.g. "Ongoing Mediation"
}

// Response use case output with the created schedule
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
	RequestStatus  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
