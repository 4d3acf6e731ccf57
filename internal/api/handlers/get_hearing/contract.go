package get_hearing

import (
	"context"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings/models"
)

type HearingsService interface {
	GetByID(ctx context.Context, id int64) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
