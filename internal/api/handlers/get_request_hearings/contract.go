package get_request_hearings

import (
	"context"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings/models"
)

type HearingsService interface {
	GetRequestHearings(ctx context.Context, requestID int64) (*models.HearingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
