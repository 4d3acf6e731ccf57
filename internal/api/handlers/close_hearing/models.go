package close_hearing

import (
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	closeHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/close_hearing"
)

// CloseHearingRequest HTTP request model, the schedule ID comes from the path
type CloseHearingRequest struct {
	Outcome string `json:"outcome"` // "settled" / "unresolved" / "dismissed" / "escalated"
}

// CloseHearingResponse HTTP response model
type CloseHearingResponse struct {
	ScheduleID int64  `json:"scheduleId"`
	Outcome    string `json:"outcome"`
	Status     string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CloseHearingRequest) ToUseCaseRequest(scheduleID int64) *closeHearing.Request {
	return &closeHearing.Request{
		ScheduleID: scheduleID,
		Outcome:    domain.HearingOutcome(r.Outcome),
	}
}
