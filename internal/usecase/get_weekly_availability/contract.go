package get_weekly_availability

import (
	"context"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// SlotRepository is the slot store read interface plus horizon growth
type SlotRepository interface {
	EnsureDay(ctx context.Context, date time.Time, serviceIDs []int64) error
	GetRange(ctx context.Context, from, to time.Time) ([]*domain.Slot, error)
}

// ServiceRepository is the bookable services reference data interface
type ServiceRepository interface {
	GetActive(ctx context.Context) ([]*domain.Service, error)
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
