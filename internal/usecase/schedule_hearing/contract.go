package schedule_hearing

import (
	"context"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
)

// SlotAllocator is the allocator interface, the only path to slot mutation
type SlotAllocator interface {
	Reserve(ctx context.Context, p allocator.ReserveParams) (*domain.ReservationHandle, error)
	Release(ctx context.Context, handle *domain.ReservationHandle) error
}

// ScheduleRepository is the schedule store interface
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.SummonSchedule) (*domain.SummonSchedule, error)
	Void(ctx context.Context, id int64) error
}

// ServiceRepository is the bookable services reference data interface
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetActive(ctx context.Context) ([]*domain.Service, error)
}

// SlotRepository is the subset of the slot store used to grow the horizon
type SlotRepository interface {
	EnsureDay(ctx context.Context, date time.Time, serviceIDs []int64) error
}

// CaseServiceClient is the external case/request service interface
type CaseServiceClient interface {
	GetRequest(ctx context.Context, requestID int64) (*caseservice.SummonRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, status domain.RequestStatus) error
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
