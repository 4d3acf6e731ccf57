package close_hearing

import (
	"context"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// SlotAllocator is the allocator interface used to return the slot to the pool
type SlotAllocator interface {
	Release(ctx context.Context, handle *domain.ReservationHandle) error
}

// ScheduleRepository is the schedule store interface
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error)
	MarkTerminal(ctx context.Context, id int64, outcome domain.HearingOutcome) error
}

// CaseServiceClient updates the request status when the hearing concludes
type CaseServiceClient interface {
	UpdateStatus(ctx context.Context, requestID int64, status domain.RequestStatus) error
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
