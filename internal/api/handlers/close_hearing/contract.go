package close_hearing

import (
	"context"

	closeHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/close_hearing"
)

type CloseHearingUseCase interface {
	Execute(ctx context.Context, req *closeHearing.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
