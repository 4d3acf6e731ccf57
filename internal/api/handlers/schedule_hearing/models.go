package schedule_hearing

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	scheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/schedule_hearing"
)

// ScheduleHearingRequest HTTP request model
type ScheduleHearingRequest struct {
	RequestID      int64  `json:"requestId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"`   // "2025-03-10"
	Period         string `json:"period"` // "AM" / "PM"
	MediationLevel int    `json:"mediationLevel"`
	Reason         string `json:"reason"`
}

// HearingResponse HTTP response model
type HearingResponse struct {
	ID             int64  `json:"id"`
	RequestID      int64  `json:"requestId"`
	ServiceID      int64  `json:"serviceId"`
	ServiceName    string `json:"serviceName"`
	HearingDate    string `json:"hearingDate"`
	Period         string `json:"period"`
	MediationLevel int    `json:"mediationLevel"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	RequestStatus  string `json:"requestStatus"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *ScheduleHearingRequest) ToUseCaseRequest() (*scheduleHearing.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &scheduleHearing.Request{
		RequestID:      r.RequestID,
		ServiceID:      r.ServiceID,
		Date:           date,
		Period:         domain.Period(r.Period),
		MediationLevel: r.MediationLevel,
		Reason:         r.Reason,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *scheduleHearing.Response) *HearingResponse {
	return &HearingResponse{
		ID:             resp.ID,
		RequestID:      resp.RequestID,
		ServiceID:      resp.ServiceID,
		ServiceName:    resp.ServiceName,
		HearingDate:    resp.HearingDate.Format(domain.DateFormat),
		Period:         string(resp.Period),
		MediationLevel: resp.MediationLevel,
		Reason:         resp.Reason,
		Status:         resp.Status,
		RequestStatus:  resp.RequestStatus,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
