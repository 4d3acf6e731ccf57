package schedule_hearing

import (
	"context"

	scheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/schedule_hearing"
)

type ScheduleHearingUseCase interface {
	Execute(ctx context.Context, req *scheduleHearing.Request) (*scheduleHearing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
