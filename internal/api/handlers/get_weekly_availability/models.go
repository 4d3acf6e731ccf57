package get_weekly_availability

import (
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	getWeeklyAvailability "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/get_weekly_availability"
)

// WeeklyAvailabilityResponse HTTP response model, one entry per day of the week
type WeeklyAvailabilityResponse struct {
	WeekStart string        `json:"weekStart"` // "2025-03-10"
	Days      []DaySchedule `json:"days"`
}

// DaySchedule the per-service slot states of one calendar date
type DaySchedule struct {
	Date     string         `json:"date"`
	Services []ServiceSlots `json:"services"`
}

// ServiceSlots the AM/PM states of one service on one date
type ServiceSlots struct {
	ServiceID   int64     `json:"serviceId"`
	ServiceCode string    `json:"serviceCode"`
	ServiceName string    `json:"serviceName"`
	AM          SlotState `json:"am"`
	PM          SlotState `json:"pm"`
}

// SlotState availability of one slot
type SlotState struct {
	Booked bool `json:"booked"`
}

// FromUseCaseResponse converts the use case grid into the HTTP model
func FromUseCaseResponse(resp *getWeeklyAvailability.Response) *WeeklyAvailabilityResponse {
	out := &WeeklyAvailabilityResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Days:      make([]DaySchedule, len(resp.Days)),
	}

	for i, day := range resp.Days {
		services := make([]ServiceSlots, len(day.Services))
		for j, svc := range day.Services {
			services[j] = ServiceSlots{
				ServiceID:   svc.ServiceID,
				ServiceCode: svc.ServiceCode,
				ServiceName: svc.ServiceName,
				AM:          SlotState{Booked: svc.AM.Booked},
				PM:          SlotState{Booked: svc.PM.Booked},
			}
		}
		out.Days[i] = DaySchedule{
			Date:     day.Date.Format(domain.DateFormat),
			Services: services,
		}
	}

	return out
}
