package schedule_hearing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	serviceRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/service"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
)

// UseCase books a hearing for a summon request. The operation spans three
// resources (slot store, schedule records, case status) and compensates on
// partial failure: the caller is never left with a booked slot and no active
// schedule record pointing at it.
type UseCase struct {
	allocator    SlotAllocator
	scheduleRepo ScheduleRepository
	serviceRepo  ServiceRepository
	slotRepo     SlotRepository
	caseClient   CaseServiceClient
	logger       Logger
}

// NewUseCase creates a new schedule hearing use case
func NewUseCase(
	slotAllocator SlotAllocator,
	scheduleRepository ScheduleRepository,
	serviceRepository ServiceRepository,
	slotRepository SlotRepository,
	caseClient CaseServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocator:    slotAllocator,
		scheduleRepo: scheduleRepository,
		serviceRepo:  serviceRepository,
		slotRepo:     slotRepository,
		caseClient:   caseClient,
		logger:       logger,
	}
}

// Execute books the slot, creates the schedule record and advances the request
// status to ongoing, compensating already-applied steps on failure.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleHearing: request=%d, service=%d, date=%s, period=%s, level=%d",
		req.RequestID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Period, req.MediationLevel)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleHearing: validation failed: %v", err)
		return nil, err
	}

	// 2. The summon request must exist and still be schedulable
	request, err := uc.caseClient.GetRequest(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, caseservice.ErrRequestNotFound) {
			uc.logger.Warn("ScheduleHearing: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("ScheduleHearing: failed to get request id=%d: %v", req.RequestID, err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	if !domain.RequestStatus(request.Status).IsSchedulable() {
		uc.logger.Warn("ScheduleHearing: request id=%d has status=%s, not schedulable", req.RequestID, request.Status)
		return nil, ErrRequestClosed
	}

	// 3. The hearing track must exist and be active
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("ScheduleHearing: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ScheduleHearing: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.Active {
		uc.logger.Warn("ScheduleHearing: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Grow the horizon so the requested day exists with all slots unbooked
	if err := uc.ensureDay(ctx, req); err != nil {
		return nil, err
	}

	// 5. Reserve the slot. Conflicts pass through typed, nothing was changed.
	handle, err := uc.allocator.Reserve(ctx, allocator.ReserveParams{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Period:    req.Period,
		RequestID: req.RequestID,
	})
	if err != nil {
		return nil, uc.mapAllocatorError(req, err)
	}

	// 6. Create the schedule record. The reservation token doubles as the
	// record's idempotency key: both were minted by the same saga attempt.
	schedule := &domain.SummonSchedule{
		RequestID:      req.RequestID,
		ServiceID:      req.ServiceID,
		HearingDate:    req.Date,
		Period:         req.Period,
		MediationLevel: req.MediationLevel,
		Reason:         req.Reason,
		Status:         domain.ScheduleStatusActive,
		IdempotencyKey: handle.Token,
		ServiceName:    svc.Name,
	}

	created, err := uc.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		uc.logger.Error("ScheduleHearing: failed to create schedule for request=%d: %v", req.RequestID, err)
		uc.compensateReserve(ctx, handle)
		return nil, fmt.Errorf("%w: create schedule: %v", ErrSchedulingFailed, err)
	}

	// 7. Advance the request status. On failure the record is voided and the
	// slot released, so no active record ever points at a free slot.
	if err := uc.caseClient.UpdateStatus(ctx, req.RequestID, domain.RequestStatusOngoing); err != nil {
		uc.logger.Error("ScheduleHearing: failed to update request id=%d status: %v", req.RequestID, err)
		uc.compensateCreate(ctx, created.ID, handle)
		return nil, fmt.Errorf("%w: update request status: %v", ErrSchedulingFailed, err)
	}

	uc.logger.Info("ScheduleHearing: created schedule id=%d for request=%d", created.ID, req.RequestID)

	return &Response{
		ID:             created.ID,
		RequestID:      created.RequestID,
		ServiceID:      created.ServiceID,
		ServiceName:    created.ServiceName,
		HearingDate:    created.HearingDate,
		Period:         created.Period,
		MediationLevel: created.MediationLevel,
		Reason:         created.Reason,
		Status:         string(created.Status),
		RequestStatus:  string(domain.RequestStatusOngoing),
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}

// ensureDay initializes the requested date for every active service
func (uc *UseCase) ensureDay(ctx context.Context, req *Request) error {
	services, err := uc.serviceRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("ScheduleHearing: failed to list active services: %v", err)
		return fmt.Errorf("%w: list active services: %v", ErrInternal, err)
	}

	if err := uc.slotRepo.EnsureDay(ctx, req.Date, serviceIDs(services)); err != nil {
		uc.logger.Error("ScheduleHearing: failed to ensure day %s: %v", req.Date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: ensure day: %v", ErrInternal, err)
	}

	return nil
}

// mapAllocatorError translates allocator conflicts into use case errors
func (uc *UseCase) mapAllocatorError(req *Request, err error) error {
	switch {
	case errors.Is(err, allocator.ErrSlotTaken):
		uc.logger.Warn("ScheduleHearing: slot taken for request=%d, date=%s, period=%s",
			req.RequestID, req.Date.Format(domain.DateFormat), req.Period)
		return ErrSlotTaken
	case errors.Is(err, allocator.ErrAlreadyScheduled):
		uc.logger.Warn("ScheduleHearing: request=%d already has an active hearing", req.RequestID)
		return ErrAlreadyScheduled
	case errors.Is(err, allocator.ErrDateInPast):
		uc.logger.Warn("ScheduleHearing: date %s is in the past for request=%d",
			req.Date.Format(domain.DateFormat), req.RequestID)
		return ErrDateInPast
	case errors.Is(err, allocator.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("ScheduleHearing: reserve failed for request=%d: %v", req.RequestID, err)
		return fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
	}
}

// compensateReserve rolls back a successful reserve
func (uc *UseCase) compensateReserve(ctx context.Context, handle *domain.ReservationHandle) {
	if err := uc.allocator.Release(ctx, handle); err != nil {
		// Release is idempotent, the operator can retry it by token
		uc.logger.Error("ScheduleHearing: compensation release failed, token=%s: %v", handle.Token, err)
	}
}

// compensateCreate rolls back a created schedule record and its reservation
func (uc *UseCase) compensateCreate(ctx context.Context, scheduleID int64, handle *domain.ReservationHandle) {
	if err := uc.scheduleRepo.Void(ctx, scheduleID); err != nil {
		uc.logger.Error("ScheduleHearing: compensation void failed, schedule id=%d: %v", scheduleID, err)
	}
	uc.compensateReserve(ctx, handle)
}
