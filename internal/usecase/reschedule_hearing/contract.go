package reschedule_hearing

import (
	"context"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
)

// SlotAllocator is the allocator interface, the only path to slot mutation
type SlotAllocator interface {
	Reserve(ctx context.Context, p allocator.ReserveParams) (*domain.ReservationHandle, error)
	Release(ctx context.Context, handle *domain.ReservationHandle) error
}

// ScheduleRepository is the schedule store interface
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error)
	Create(ctx context.Context, s *domain.SummonSchedule) (*domain.SummonSchedule, error)
	MarkSuperseded(ctx context.Context, id int64) error
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

// TransactionManager wraps the supersede handover into one transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
