package close_hearing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
)

// Request use case input for concluding a hearing
type Request struct {
	ScheduleID int64
	Outcome    domain.HearingOutcome
}

// UseCase concludes a hearing: the schedule becomes terminal, the request
// status cascades from the outcome and the slot returns to the pool.
type UseCase struct {
	allocator    SlotAllocator
	scheduleRepo ScheduleRepository
	caseClient   CaseServiceClient
	logger       Logger
}

// NewUseCase creates a new close hearing use case
func NewUseCase(
	slotAllocator SlotAllocator,
	scheduleRepository ScheduleRepository,
	caseClient CaseServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocator:    slotAllocator,
		scheduleRepo: scheduleRepository,
		caseClient:   caseClient,
		logger:       logger,
	}
}

// Execute closes the hearing. The case status update runs before any local
// write: a failure on either side leaves the schedule active, so the caller
// retries the whole close and re-sending the same status is harmless. The
// slot is released last and a missed release is cleaned up by a retry too.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CloseHearing: schedule=%d, outcome=%s", req.ScheduleID, req.Outcome)

	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}
	if !req.Outcome.IsValid() {
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, req.Outcome)
	}

	schedule, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CloseHearing: schedule id=%d not found", req.ScheduleID)
			return ErrScheduleNotFound
		}
		uc.logger.Error("CloseHearing: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.IsActive() {
		uc.logger.Warn("CloseHearing: schedule id=%d has status=%s, not active", schedule.ID, schedule.Status)
		return ErrNotActive
	}

	status := domain.StatusForOutcome(req.Outcome)
	if err := uc.caseClient.UpdateStatus(ctx, schedule.RequestID, status); err != nil {
		uc.logger.Error("CloseHearing: failed to update request id=%d status to %s: %v",
			schedule.RequestID, status, err)
		return fmt.Errorf("%w: update request status: %v", ErrInternal, err)
	}

	if err := uc.scheduleRepo.MarkTerminal(ctx, schedule.ID, req.Outcome); err != nil {
		uc.logger.Error("CloseHearing: failed to mark schedule id=%d terminal: %v", schedule.ID, err)
		return fmt.Errorf("%w: mark terminal: %v", ErrInternal, err)
	}

	handle := &domain.ReservationHandle{
		Token:     schedule.IdempotencyKey,
		Date:      schedule.HearingDate,
		ServiceID: schedule.ServiceID,
		Period:    schedule.Period,
	}
	if err := uc.allocator.Release(ctx, handle); err != nil {
		uc.logger.Error("CloseHearing: failed to release slot for schedule id=%d: %v", schedule.ID, err)
	}

	uc.logger.Info("CloseHearing: schedule id=%d closed with outcome=%s, request=%d status=%s",
		schedule.ID, req.Outcome, schedule.RequestID, status)

	return nil
}
