package hearings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	scheduleRepoErrs "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	schedules map[int64]*domain.SummonSchedule
	byRequest map[int64][]*domain.SummonSchedule
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.SummonSchedule, error) {
	if s, ok := r.schedules[id]; ok {
		return s, nil
	}
	return nil, scheduleRepoErrs.ErrScheduleNotFound
}

func (r *fakeScheduleRepo) GetByRequestID(ctx context.Context, requestID int64) ([]*domain.SummonSchedule, error) {
	return r.byRequest[requestID], nil
}

type fakeCaseClient struct {
	getErr error
}

func (c *fakeCaseClient) GetRequest(ctx context.Context, requestID int64) (*caseservice.SummonRequest, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return &caseservice.SummonRequest{ID: requestID, Status: "ongoing"}, nil
}

func TestGetByID(t *testing.T) {
	outcome := domain.OutcomeSettled
	repo := &fakeScheduleRepo{schedules: map[int64]*domain.SummonSchedule{
		7: {
			ID:          7,
			RequestID:   42,
			ServiceID:   1,
			HearingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Period:      domain.PeriodAM,
			Status:      domain.ScheduleStatusClosed,
			Outcome:     &outcome,
			ServiceName: "Punong Barangay Mediation",
		},
	}}
	svc := NewService(repo, &fakeCaseClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-03-10", resp.HearingDate)
	assert.Equal(t, "closed", resp.Status)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, "settled", *resp.Outcome)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeCaseClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetRequestHearings(t *testing.T) {
	repo := &fakeScheduleRepo{byRequest: map[int64][]*domain.SummonSchedule{
		42: {
			{ID: 8, RequestID: 42, Status: domain.ScheduleStatusActive, IsRescheduled: true, PredecessorID: ptr.Ptr(int64(7))},
			{ID: 7, RequestID: 42, Status: domain.ScheduleStatusSuperseded},
		},
	}}
	svc := NewService(repo, &fakeCaseClient{}, nopLogger{})

	resp, err := svc.GetRequestHearings(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, resp.Hearings, 2)

	// History keeps superseded records with their predecessor links
	assert.Equal(t, int64(8), resp.Hearings[0].ID)
	assert.True(t, resp.Hearings[0].IsRescheduled)
	require.NotNil(t, resp.Hearings[0].PredecessorID)
	assert.Equal(t, int64(7), *resp.Hearings[0].PredecessorID)
	assert.Equal(t, "superseded", resp.Hearings[1].Status)
}

func TestGetRequestHearingsRequestNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeCaseClient{getErr: caseservice.ErrRequestNotFound}, nopLogger{})

	_, err := svc.GetRequestHearings(context.Background(), 999)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestGetRequestHearingsEmptyHistory(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeCaseClient{}, nopLogger{})

	resp, err := svc.GetRequestHearings(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, resp.Hearings)
}
