package schedule_hearing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/schedule_hearing"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *scheduleHearing.Response
	err  error
}

func (u *fakeUseCase) Execute(ctx context.Context, req *scheduleHearing.Request) (*scheduleHearing.Response, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

const validBody = `{
	"requestId": 42,
	"serviceId": 1,
	"date": "2025-03-10",
	"period": "AM",
	"mediationLevel": 1,
	"reason": "Ongoing Mediation"
}`

func doRequest(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hearings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	useCase := &fakeUseCase{resp: &scheduleHearing.Response{
		ID:             101,
		RequestID:      42,
		ServiceID:      1,
		ServiceName:    "Punong Barangay Mediation",
		HearingDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Period:         domain.PeriodAM,
		MediationLevel: 1,
		Reason:         "Ongoing Mediation",
		Status:         string(domain.ScheduleStatusActive),
		RequestStatus:  string(domain.RequestStatusOngoing),
	}}

	rec := doRequest(t, useCase, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":101`)
	assert.Contains(t, rec.Body.String(), `"hearingDate":"2025-03-10"`)
	assert.Contains(t, rec.Body.String(), `"requestStatus":"ongoing"`)
}

func TestHandleBadBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"requestId": "not a number"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, strings.Replace(validBody, "2025-03-10", "10.03.2025", 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", scheduleHearing.ErrSlotTaken, http.StatusConflict},
		{"already scheduled", scheduleHearing.ErrAlreadyScheduled, http.StatusConflict},
		{"request closed", scheduleHearing.ErrRequestClosed, http.StatusConflict},
		{"date in past", scheduleHearing.ErrDateInPast, http.StatusBadRequest},
		{"invalid input", scheduleHearing.ErrInvalidInput, http.StatusBadRequest},
		{"request not found", scheduleHearing.ErrRequestNotFound, http.StatusNotFound},
		{"service not found", scheduleHearing.ErrServiceNotFound, http.StatusNotFound},
		{"scheduling failed", scheduleHearing.ErrSchedulingFailed, http.StatusBadGateway},
		{"internal", scheduleHearing.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
