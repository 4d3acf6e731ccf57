package allocator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
	slotRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/slot"
)

// Service is the slot allocator, the only writer of the weekly schedule store.
// Reserve re-validates the conflict rules and flips the booked flag inside one
// serializable transaction, so two concurrent reserves of the same triple end
// with exactly one handle and one ErrSlotTaken.
type Service struct {
	slotRepo     SlotRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// ReserveParams parameters of a reserve call
type ReserveParams struct {
	Date      time.Time
	ServiceID int64
	Period    domain.Period
	RequestID int64

	// IgnoreScheduleID exempts one schedule from the already-scheduled rule.
	// Set by the reschedule coordinator for the schedule being moved.
	IgnoreScheduleID *int64
}

// NewService creates a new slot allocator
func NewService(
	slotRepository SlotRepository,
	scheduleRepository ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepository,
		scheduleRepo: scheduleRepository,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Reserve atomically validates and books one slot. On success the slot is
// booked and a handle identifying the held triple is returned. On conflict
// nothing changes and a typed conflict error is returned.
func (s *Service) Reserve(ctx context.Context, p ReserveParams) (*domain.ReservationHandle, error) {
	if err := validateParams(p); err != nil {
		s.logger.Warn("Reserve: validation failed: %v", err)
		return nil, err
	}

	key := domain.SlotKey{Date: p.Date, ServiceID: p.ServiceID, Period: p.Period}
	now := s.timeProvider.Now()

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Slot must exist in the horizon and be unbooked
		slot, err := s.slotRepo.GetSlot(txCtx, key)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("Reserve: slot %s/%d/%s not in horizon", p.Date.Format(domain.DateFormat), p.ServiceID, p.Period)
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: Reserve - get slot: %v", ErrInternal, err)
		}
		if err := checkSlotFree(slot); err != nil {
			return err
		}

		// 2. The request must not hold another active hearing
		active, err := s.scheduleRepo.GetActiveByRequestID(txCtx, p.RequestID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return fmt.Errorf("%w: Reserve - get active schedule: %v", ErrInternal, err)
		}
		if err := checkNoActiveHearing(active, p.IgnoreScheduleID); err != nil {
			return err
		}

		// 3. The date must not already be over
		if err := checkDateNotPast(p.Date, now); err != nil {
			return err
		}

		// 4. Conditional update, the store-level compare-and-swap
		if err := s.slotRepo.MarkBooked(txCtx, key); err != nil {
			if errors.Is(err, slotRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: Reserve - mark booked: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	handle := &domain.ReservationHandle{
		Token:     uuid.NewString(),
		Date:      p.Date,
		ServiceID: p.ServiceID,
		Period:    p.Period,
	}

	s.logger.Info("Reserve: slot %s/%d/%s reserved for request=%d, token=%s",
		p.Date.Format(domain.DateFormat), p.ServiceID, p.Period, p.RequestID, handle.Token)

	return handle, nil
}

// Release returns the held slot to the pool. Idempotent: releasing a handle
// whose slot is already free is a no-op. Transient failures may be retried.
func (s *Service) Release(ctx context.Context, handle *domain.ReservationHandle) error {
	if handle == nil {
		return nil
	}

	key := domain.SlotKey{Date: handle.Date, ServiceID: handle.ServiceID, Period: handle.Period}

	if err := s.slotRepo.Release(ctx, key); err != nil {
		return fmt.Errorf("%w: Release - release slot: %v", ErrInternal, err)
	}

	s.logger.Info("Release: slot %s/%d/%s released, token=%s",
		handle.Date.Format(domain.DateFormat), handle.ServiceID, handle.Period, handle.Token)

	return nil
}

// WithTimeProvider overrides the time source. Used in tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}
