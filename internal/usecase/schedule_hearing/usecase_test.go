package schedule_hearing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	serviceRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/service"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAllocator struct {
	reserveErr error
	released   []*domain.ReservationHandle
}

func (a *fakeAllocator) Reserve(ctx context.Context, p allocator.ReserveParams) (*domain.ReservationHandle, error) {
	if a.reserveErr != nil {
		return nil, a.reserveErr
	}
	return &domain.ReservationHandle{
		Token:     "token-1",
		Date:      p.Date,
		ServiceID: p.ServiceID,
		Period:    p.Period,
	}, nil
}

func (a *fakeAllocator) Release(ctx context.Context, handle *domain.ReservationHandle) error {
	a.released = append(a.released, handle)
	return nil
}

type fakeScheduleRepo struct {
	createErr error
	created   *domain.SummonSchedule
	voided    []int64
}

func (r *fakeScheduleRepo) Create(ctx context.Context, s *domain.SummonSchedule) (*domain.SummonSchedule, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	s.ID = 101
	s.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	r.created = s
	return s, nil
}

func (r *fakeScheduleRepo) Void(ctx context.Context, id int64) error {
	r.voided = append(r.voided, id)
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if svc, ok := r.services[id]; ok {
		return svc, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (r *fakeServiceRepo) GetActive(ctx context.Context) ([]*domain.Service, error) {
	active := make([]*domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

type fakeSlotRepo struct {
	ensuredDays []time.Time
}

func (r *fakeSlotRepo) EnsureDay(ctx context.Context, date time.Time, serviceIDs []int64) error {
	r.ensuredDays = append(r.ensuredDays, date)
	return nil
}

type fakeCaseClient struct {
	request         *caseservice.SummonRequest
	getErr          error
	updateErr       error
	updatedStatuses []domain.RequestStatus
}

func (c *fakeCaseClient) GetRequest(ctx context.Context, requestID int64) (*caseservice.SummonRequest, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.request, nil
}

func (c *fakeCaseClient) UpdateStatus(ctx context.Context, requestID int64, status domain.RequestStatus) error {
	if c.updateErr != nil {
		return c.updateErr
	}
	c.updatedStatuses = append(c.updatedStatuses, status)
	return nil
}

type fixture struct {
	allocator    *fakeAllocator
	scheduleRepo *fakeScheduleRepo
	serviceRepo  *fakeServiceRepo
	slotRepo     *fakeSlotRepo
	caseClient   *fakeCaseClient
	useCase      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		allocator:    &fakeAllocator{},
		scheduleRepo: &fakeScheduleRepo{},
		serviceRepo: &fakeServiceRepo{services: map[int64]*domain.Service{
			1: {ID: 1, Code: "mediation", Name: "Punong Barangay Mediation", Active: true},
		}},
		slotRepo: &fakeSlotRepo{},
		caseClient: &fakeCaseClient{request: &caseservice.SummonRequest{
			ID:     42,
			Status: string(domain.RequestStatusPending),
		}},
	}
	f.useCase = NewUseCase(f.allocator, f.scheduleRepo, f.serviceRepo, f.slotRepo, f.caseClient, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		RequestID:      42,
		ServiceID:      1,
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Period:         domain.PeriodAM,
		MediationLevel: domain.LevelFirstSummon,
		Reason:         "Ongoing Mediation",
	}
}

func TestExecuteSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(42), resp.RequestID)
	assert.Equal(t, "Punong Barangay Mediation", resp.ServiceName)
	assert.Equal(t, string(domain.ScheduleStatusActive), resp.Status)
	assert.Equal(t, string(domain.RequestStatusOngoing), resp.RequestStatus)

	require.NotNil(t, f.scheduleRepo.created)
	assert.Equal(t, "token-1", f.scheduleRepo.created.IdempotencyKey)
	assert.Len(t, f.slotRepo.ensuredDays, 1)
	assert.Equal(t, []domain.RequestStatus{domain.RequestStatusOngoing}, f.caseClient.updatedStatuses)
	assert.Empty(t, f.allocator.released)
	assert.Empty(t, f.scheduleRepo.voided)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero request ID", func(r *Request) { r.RequestID = 0 }},
		{"zero service ID", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad period", func(r *Request) { r.Period = "NOON" }},
		{"level too low", func(r *Request) { r.MediationLevel = 0 }},
		{"level too high", func(r *Request) { r.MediationLevel = 4 }},
		{"empty reason", func(r *Request) { r.Reason = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.useCase.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteRequestNotFound(t *testing.T) {
	f := newFixture()
	f.caseClient.getErr = caseservice.ErrRequestNotFound

	_, err := f.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestExecuteRequestNotSchedulable(t *testing.T) {
	for _, status := range []domain.RequestStatus{domain.RequestStatusResolved, domain.RequestStatusClosed} {
		f := newFixture()
		f.caseClient.request.Status = string(status)

		_, err := f.useCase.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrRequestClosed, "status %s", status)
	}
}

func TestExecuteServiceNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ServiceID = 99

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteServiceInactive(t *testing.T) {
	f := newFixture()
	f.serviceRepo.services[1].Active = false

	_, err := f.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteConflictMapping(t *testing.T) {
	tests := []struct {
		name       string
		reserveErr error
		wantErr    error
	}{
		{"slot taken", allocator.ErrSlotTaken, ErrSlotTaken},
		{"already scheduled", allocator.ErrAlreadyScheduled, ErrAlreadyScheduled},
		{"date in past", allocator.ErrDateInPast, ErrDateInPast},
		{"invalid input", allocator.ErrInvalidInput, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.allocator.reserveErr = tt.reserveErr

			_, err := f.useCase.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.scheduleRepo.created, "no record on a failed reserve")
		})
	}
}

func TestExecuteCompensatesWhenCreateFails(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.createErr = errors.New("insert failed")

	_, err := f.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSchedulingFailed)
	require.Len(t, f.allocator.released, 1, "the reserved slot must be released")
	assert.Equal(t, "token-1", f.allocator.released[0].Token)
	assert.Empty(t, f.caseClient.updatedStatuses, "case status must stay untouched")
}

func TestExecuteCompensatesWhenStatusUpdateFails(t *testing.T) {
	f := newFixture()
	f.caseClient.updateErr = errors.New("case service down")

	_, err := f.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSchedulingFailed)
	assert.Equal(t, []int64{101}, f.scheduleRepo.voided, "the created record must be voided")
	require.Len(t, f.allocator.released, 1, "the reserved slot must be released")
	assert.Equal(t, "token-1", f.allocator.released[0].Token)
}
