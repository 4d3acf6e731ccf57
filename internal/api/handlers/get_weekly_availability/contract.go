package get_weekly_availability

import (
	"context"

	getWeeklyAvailability "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/get_weekly_availability"
)

type GetWeeklyAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getWeeklyAvailability.Request) (*getWeeklyAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
