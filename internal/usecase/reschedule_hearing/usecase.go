package reschedule_hearing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
	serviceRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/service"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/ptr"
)

// UseCase moves an active hearing to a new slot as one compound operation.
// The new slot is reserved before the old one is released, so the case never
// holds zero slots and nobody can steal the old slot mid-move. The mediation
// level carries forward unchanged: raising it is an escalation, which is a new
// summon, not a move.
type UseCase struct {
	allocator    SlotAllocator
	scheduleRepo ScheduleRepository
	serviceRepo  ServiceRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates a new reschedule hearing use case
func NewUseCase(
	slotAllocator SlotAllocator,
	scheduleRepository ScheduleRepository,
	serviceRepository ServiceRepository,
	slotRepository SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocator:    slotAllocator,
		scheduleRepo: scheduleRepository,
		serviceRepo:  serviceRepository,
		slotRepo:     slotRepository,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute performs the reschedule. All-or-nothing: if the new slot cannot be
// reserved or the handover fails, the old schedule stays active and booked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleHearing: schedule=%d, service=%d, date=%s, period=%s",
		req.ScheduleID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Period)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleHearing: validation failed: %v", err)
		return nil, err
	}

	// 2. The old schedule must exist and still hold its slot
	old, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("RescheduleHearing: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("RescheduleHearing: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !old.IsActive() {
		uc.logger.Warn("RescheduleHearing: schedule id=%d has status=%s, not active", old.ID, old.Status)
		return nil, ErrNotActive
	}

	// 3. The new hearing track must exist and be active
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("RescheduleHearing: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("RescheduleHearing: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.Active {
		uc.logger.Warn("RescheduleHearing: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Grow the horizon for the new date
	services, err := uc.serviceRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("RescheduleHearing: failed to list active services: %v", err)
		return nil, fmt.Errorf("%w: list active services: %v", ErrInternal, err)
	}
	if err := uc.slotRepo.EnsureDay(ctx, req.Date, serviceIDs(services)); err != nil {
		uc.logger.Error("RescheduleHearing: failed to ensure day %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ensure day: %v", ErrInternal, err)
	}

	// 5. Reserve the new slot first. The already-scheduled rule is relaxed for
	// the schedule being moved, all other conflict rules apply to the new slot.
	handle, err := uc.allocator.Reserve(ctx, allocator.ReserveParams{
		Date:             req.Date,
		ServiceID:        req.ServiceID,
		Period:           req.Period,
		RequestID:        old.RequestID,
		IgnoreScheduleID: ptr.Ptr(old.ID),
	})
	if err != nil {
		return nil, uc.mapAllocatorError(req, err)
	}

	// 6. Handover in one transaction: supersede the old, insert the successor.
	reason := old.Reason
	if req.Reason != nil {
		reason = *req.Reason
	}

	successor := &domain.SummonSchedule{
		RequestID:      old.RequestID,
		ServiceID:      req.ServiceID,
		HearingDate:    req.Date,
		Period:         req.Period,
		MediationLevel: old.MediationLevel,
		Reason:         reason,
		Status:         domain.ScheduleStatusActive,
		IsRescheduled:  true,
		PredecessorID:  ptr.Ptr(old.ID),
		IdempotencyKey: handle.Token,
		ServiceName:    svc.Name,
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// The partial unique index permits one active row per request and is
		// checked per statement, so the old record steps down before the
		// successor is inserted. A rollback restores the old row as active.
		if err := uc.scheduleRepo.MarkSuperseded(txCtx, old.ID); err != nil {
			return fmt.Errorf("supersede schedule id=%d: %w", old.ID, err)
		}
		if _, err := uc.scheduleRepo.Create(txCtx, successor); err != nil {
			return fmt.Errorf("create successor schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("RescheduleHearing: handover failed for schedule id=%d: %v", old.ID, err)
		if relErr := uc.allocator.Release(ctx, handle); relErr != nil {
			uc.logger.Error("RescheduleHearing: compensation release failed, token=%s: %v", handle.Token, relErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
	}

	// 7. Release the old slot. Best effort after the handover committed: a
	// transient failure here leaves a stale booked flag that a retried release
	// clears, it never resurrects the superseded schedule.
	oldHandle := &domain.ReservationHandle{
		Token:     old.IdempotencyKey,
		Date:      old.HearingDate,
		ServiceID: old.ServiceID,
		Period:    old.Period,
	}
	if err := uc.allocator.Release(ctx, oldHandle); err != nil {
		uc.logger.Error("RescheduleHearing: failed to release old slot for schedule id=%d: %v", old.ID, err)
	}

	uc.logger.Info("RescheduleHearing: schedule id=%d superseded by id=%d", old.ID, successor.ID)

	return &Response{
		ID:             successor.ID,
		RequestID:      successor.RequestID,
		ServiceID:      successor.ServiceID,
		ServiceName:    successor.ServiceName,
		HearingDate:    successor.HearingDate,
		Period:         successor.Period,
		MediationLevel: successor.MediationLevel,
		Reason:         successor.Reason,
		Status:         string(successor.Status),
		IsRescheduled:  successor.IsRescheduled,
		PredecessorID:  successor.PredecessorID,
		CreatedAt:      successor.CreatedAt,
		UpdatedAt:      successor.UpdatedAt,
	}, nil
}

// mapAllocatorError translates allocator conflicts into use case errors
func (uc *UseCase) mapAllocatorError(req *Request, err error) error {
	switch {
	case errors.Is(err, allocator.ErrSlotTaken):
		uc.logger.Warn("RescheduleHearing: new slot taken, date=%s, period=%s",
			req.Date.Format(domain.DateFormat), req.Period)
		return ErrSlotTaken
	case errors.Is(err, allocator.ErrDateInPast):
		uc.logger.Warn("RescheduleHearing: date %s is in the past", req.Date.Format(domain.DateFormat))
		return ErrDateInPast
	case errors.Is(err, allocator.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("RescheduleHearing: reserve failed for schedule id=%d: %v", req.ScheduleID, err)
		return fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
	}
}
