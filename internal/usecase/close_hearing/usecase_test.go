package close_hearing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleRepoErrs "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAllocator struct {
	releaseErr error
	released   []*domain.ReservationHandle
}

func (a *fakeAllocator) Release(ctx context.Context, handle *domain.ReservationHandle) error {
	if a.releaseErr != nil {
		return a.releaseErr
	}
	a.released = append(a.released, handle)
	return nil
}

type fakeScheduleRepo struct {
	schedules       map[int64]*domain.SummonSchedule
	terminal        map[int64]domain.HearingOutcome
	markTerminalErr error
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error) {
	if s, ok := r.schedules[id]; ok {
		return s, nil
	}
	return nil, scheduleRepoErrs.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) MarkTerminal(ctx context.Context, id int64, outcome domain.HearingOutcome) error {
	if r.markTerminalErr != nil {
		return r.markTerminalErr
	}
	r.terminal[id] = outcome
	r.schedules[id].Status = domain.ScheduleStatusClosed
	return nil
}

type fakeCaseClient struct {
	updateErr error
	updated   map[int64]domain.RequestStatus
}

func (c *fakeCaseClient) UpdateStatus(ctx context.Context, requestID int64, status domain.RequestStatus) error {
	if c.updateErr != nil {
		return c.updateErr
	}
	c.updated[requestID] = status
	return nil
}

type fixture struct {
	allocator    *fakeAllocator
	scheduleRepo *fakeScheduleRepo
	caseClient   *fakeCaseClient
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		allocator: &fakeAllocator{},
		scheduleRepo: &fakeScheduleRepo{
			schedules: map[int64]*domain.SummonSchedule{
				7: {
					ID:             7,
					RequestID:      42,
					ServiceID:      1,
					HearingDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Period:         domain.PeriodAM,
					Status:         domain.ScheduleStatusActive,
					IdempotencyKey: "token-7",
				},
			},
			terminal: make(map[int64]domain.HearingOutcome),
		},
		caseClient: &fakeCaseClient{updated: make(map[int64]domain.RequestStatus)},
	}
	f.useCase = NewUseCase(f.allocator, f.scheduleRepo, f.caseClient, nopLogger{})
	return f
}

func TestExecuteSettled(t *testing.T) {
	f := newFixture()

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSettled, f.scheduleRepo.terminal[7])
	assert.Equal(t, domain.RequestStatusResolved, f.caseClient.updated[42])

	require.Len(t, f.allocator.released, 1)
	assert.Equal(t, "token-7", f.allocator.released[0].Token)
}

func TestExecuteNonSettledOutcomesCloseTheRequest(t *testing.T) {
	for _, outcome := range []domain.HearingOutcome{
		domain.OutcomeUnresolved,
		domain.OutcomeDismissed,
		domain.OutcomeEscalated,
	} {
		f := newFixture()

		err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: outcome})

		require.NoError(t, err, "outcome %s", outcome)
		assert.Equal(t, domain.RequestStatusClosed, f.caseClient.updated[42], "outcome %s", outcome)
	}
}

func TestExecuteInvalidInput(t *testing.T) {
	f := newFixture()

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 0, Outcome: domain.OutcomeSettled})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: "won"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteScheduleNotFound(t *testing.T) {
	f := newFixture()

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 999, Outcome: domain.OutcomeSettled})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecuteScheduleNotActive(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.schedules[7].Status = domain.ScheduleStatusClosed

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	assert.ErrorIs(t, err, ErrNotActive)
	assert.Empty(t, f.scheduleRepo.terminal)
}

func TestExecuteProceedsWhenReleaseFails(t *testing.T) {
	f := newFixture()
	f.allocator.releaseErr = errors.New("release failed")

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	// The hearing is closed regardless, the stale booked flag is cleared by a
	// retried release.
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSettled, f.scheduleRepo.terminal[7])
	assert.Equal(t, domain.RequestStatusResolved, f.caseClient.updated[42])
}

func TestExecuteFailsWhenStatusUpdateFails(t *testing.T) {
	f := newFixture()
	f.caseClient.updateErr = errors.New("case service down")

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	// Nothing local changed, so the schedule stays active and the whole close
	// can be retried once the case service is back.
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.scheduleRepo.terminal, "the schedule must not turn terminal")
	assert.Empty(t, f.allocator.released, "the slot must stay booked")
	assert.Equal(t, domain.ScheduleStatusActive, f.scheduleRepo.schedules[7].Status)

	f.caseClient.updateErr = nil

	err = f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSettled, f.scheduleRepo.terminal[7])
	assert.Equal(t, domain.RequestStatusResolved, f.caseClient.updated[42])
	require.Len(t, f.allocator.released, 1)
}

func TestExecuteRetryableWhenMarkTerminalFails(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.markTerminalErr = errors.New("db down")

	err := f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	// The case status already moved, the schedule stays active and a retry
	// re-sends the same status before closing.
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.RequestStatusResolved, f.caseClient.updated[42])
	assert.Equal(t, domain.ScheduleStatusActive, f.scheduleRepo.schedules[7].Status)
	assert.Empty(t, f.allocator.released, "the slot must stay booked")

	f.scheduleRepo.markTerminalErr = nil

	err = f.useCase.Execute(context.Background(), &Request{ScheduleID: 7, Outcome: domain.OutcomeSettled})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSettled, f.scheduleRepo.terminal[7])
	require.Len(t, f.allocator.released, 1)
	assert.Equal(t, "token-7", f.allocator.released[0].Token)
}
