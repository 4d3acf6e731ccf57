package reschedule_hearing

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	rescheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/reschedule_hearing"
)

// RescheduleHearingRequest HTTP request model, the schedule ID comes from the path
type RescheduleHearingRequest struct {
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`   // "2025-03-10"
	Period    string  `json:"period"` // "AM" / "PM"
	Reason    *string `json:"reason,omitempty"`
}

// HearingResponse HTTP response model with the successor schedule
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
	IsRescheduled  bool   `json:"isRescheduled"`
	PredecessorID  *int64 `json:"predecessorId,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RescheduleHearingRequest) ToUseCaseRequest(scheduleID int64) (*rescheduleHearing.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleHearing.Request{
		ScheduleID: scheduleID,
		ServiceID:  r.ServiceID,
		Date:       date,
		Period:     domain.Period(r.Period),
		Reason:     r.Reason,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *rescheduleHearing.Response) *HearingResponse {
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
		IsRescheduled:  resp.IsRescheduled,
		PredecessorID:  resp.PredecessorID,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
