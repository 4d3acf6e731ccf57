package reschedule_hearing

import (
	"context"

	rescheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/reschedule_hearing"
)

type RescheduleHearingUseCase interface {
	Execute(ctx context.Context, req *rescheduleHearing.Request) (*rescheduleHearing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
