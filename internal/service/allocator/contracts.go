package allocator

import (
	"context"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// SlotRepository is the slot store interface. The allocator is its only writer.
type SlotRepository interface {
	GetSlot(ctx context.Context, key domain.SlotKey) (*domain.Slot, error)
	MarkBooked(ctx context.Context, key domain.SlotKey) error
	Release(ctx context.Context, key domain.SlotKey) error
}

// ScheduleRepository is the schedule store interface used for conflict checks
type ScheduleRepository interface {
	GetActiveByRequestID(ctx context.Context, requestID int64) (*domain.SummonSchedule, error)
}

// TransactionManager wraps the reserve sequence into a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider provides the current time (swappable for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by the allocator
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
