package hearings

import (
	"context"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
)

// ScheduleRepository is the schedule store interface used by the read side
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error)
	GetByRequestID(ctx context.Context, requestID int64) ([]*domain.SummonSchedule, error)
}

// CaseServiceClient is the case service interface used for existence checks
type CaseServiceClient interface {
	GetRequest(ctx context.Context, requestID int64) (*caseservice.SummonRequest, error)
}

// Logger is the logging interface required by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
