package hearings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	scheduleRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings/models"
)

// Service is the read side of the scheduler: single hearing lookups and the
// per-request history, including superseded and void records.
type Service struct {
	scheduleRepo ScheduleRepository
	caseClient   CaseServiceClient
	logger       Logger
}

// NewService creates a new hearings read service
func NewService(
	scheduleRepository ScheduleRepository,
	caseClient CaseServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepository,
		caseClient:   caseClient,
		logger:       logger,
	}
}

// GetByID fetches one hearing schedule by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HearingResponse, error) {
	s.logger.Info("GetByID: fetching hearing id=%d", id)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: hearing id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for hearing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// GetRequestHearings fetches the full scheduling history of a summon request,
// newest first. The request must exist in the case service.
func (s *Service) GetRequestHearings(ctx context.Context, requestID int64) (*models.HearingListResponse, error) {
	s.logger.Info("GetRequestHearings: fetching hearings for request=%d", requestID)

	if _, err := s.caseClient.GetRequest(ctx, requestID); err != nil {
		if errors.Is(err, caseservice.ErrRequestNotFound) {
			s.logger.Warn("GetRequestHearings: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetRequestHearings: failed to get request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetRequestHearings - failed to get request: %v", ErrInternal, err)
	}

	schedules, err := s.scheduleRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		s.logger.Error("GetRequestHearings: repository error for request=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetRequestHearings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRequestHearings: fetched %d hearings for request=%d", len(schedules), requestID)
	return models.FromDomainScheduleList(schedules), nil
}
