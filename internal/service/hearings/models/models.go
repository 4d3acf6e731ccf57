package models

import (
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// HearingResponse DTO of one summon schedule record
type HearingResponse struct {
	ID             int64  `json:"id"`
	RequestID      int64  `json:"requestId"`
	ServiceID      int64  `json:"serviceId"`
	ServiceName    string `json:"serviceName"`
	HearingDate    string `json:"hearingDate"` // "2025-03-10"
	Period         string `json:"period"`      // "AM" / "PM"
	MediationLevel int    `json:"mediationLevel"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`

	IsRescheduled bool    `json:"isRescheduled"`
	PredecessorID *int64  `json:"predecessorId,omitempty"`
	Outcome       *string `json:"outcome,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HearingListResponse DTO of a request's schedule history
type HearingListResponse struct {
	Hearings []HearingResponse `json:"hearings"`
}

// FromDomainSchedule converts a domain record into a DTO
func FromDomainSchedule(s *domain.SummonSchedule) *HearingResponse {
	if s == nil {
		return nil
	}

	resp := &HearingResponse{
		ID:             s.ID,
		RequestID:      s.RequestID,
		ServiceID:      s.ServiceID,
		ServiceName:    s.ServiceName,
		HearingDate:    s.HearingDate.Format(domain.DateFormat),
		Period:         string(s.Period),
		MediationLevel: s.MediationLevel,
		Reason:         s.Reason,
		Status:         string(s.Status),
		IsRescheduled:  s.IsRescheduled,
		PredecessorID:  s.PredecessorID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	if s.Outcome != nil {
		outcome := string(*s.Outcome)
		resp.Outcome = &outcome
	}

	return resp
}

// FromDomainScheduleList converts a list of domain records into a DTO
func FromDomainScheduleList(schedules []*domain.SummonSchedule) *HearingListResponse {
	if schedules == nil {
		return &HearingListResponse{Hearings: []HearingResponse{}}
	}

	resp := &HearingListResponse{
		Hearings: make([]HearingResponse, len(schedules)),
	}

	for i, s := range schedules {
		if hearing := FromDomainSchedule(s); hearing != nil {
			resp.Hearings[i] = *hearing
		}
	}

	return resp
}
