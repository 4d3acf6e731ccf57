package get_weekly_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// UseCase assembles the weekly availability grid. Viewing a week lazily grows
// the scheduling horizon: days of the requested week are initialized with all
// slots unbooked before they are read.
type UseCase struct {
	slotRepo    SlotRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase creates a new weekly availability use case
func NewUseCase(
	slotRepository SlotRepository,
	serviceRepository ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepository,
		serviceRepo: serviceRepository,
		logger:      logger,
	}
}

// Execute returns the per-date, per-service {AM, PM} grid of the requested week
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeeklyAvailability: weekStart=%s", req.WeekStart.Format(domain.DateFormat))

	if req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	services, err := uc.serviceRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetWeeklyAvailability: failed to list active services: %v", err)
		return nil, fmt.Errorf("%w: list active services: %v", ErrInternal, err)
	}

	ids := make([]int64, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
	}

	weekStart := truncateToDay(req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek-1)

	for d := 0; d < domain.DaysPerWeek; d++ {
		date := weekStart.AddDate(0, 0, d)
		if err := uc.slotRepo.EnsureDay(ctx, date, ids); err != nil {
			uc.logger.Error("GetWeeklyAvailability: failed to ensure day %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: ensure day: %v", ErrInternal, err)
		}
	}

	slots, err := uc.slotRepo.GetRange(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetWeeklyAvailability: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: read slots: %v", ErrInternal, err)
	}

	resp := buildGrid(weekStart, services, slots)

	uc.logger.Info("GetWeeklyAvailability: built grid for %d days, %d services",
		len(resp.Days), len(services))

	return resp, nil
}

// buildGrid groups the flat slot rows into the per-date, per-service grid.
// Days and services always appear in full: a slot row missing from the store
// surfaces as booked=false only if EnsureDay created it, otherwise the row
// set and the service list match by construction.
func buildGrid(weekStart time.Time, services []*domain.Service, slots []*domain.Slot) *Response {
	type dayKey string

	booked := make(map[dayKey]map[int64]map[domain.Period]bool, domain.DaysPerWeek)
	for _, s := range slots {
		k := dayKey(s.Date.Format(domain.DateFormat))
		if booked[k] == nil {
			booked[k] = make(map[int64]map[domain.Period]bool)
		}
		if booked[k][s.ServiceID] == nil {
			booked[k][s.ServiceID] = make(map[domain.Period]bool)
		}
		booked[k][s.ServiceID][s.Period] = s.Booked
	}

	resp := &Response{
		WeekStart: weekStart,
		Days:      make([]DaySchedule, domain.DaysPerWeek),
	}

	for d := 0; d < domain.DaysPerWeek; d++ {
		date := weekStart.AddDate(0, 0, d)
		k := dayKey(date.Format(domain.DateFormat))

		day := DaySchedule{
			Date:     date,
			Services: make([]ServiceSlots, len(services)),
		}

		for i, svc := range services {
			entry := ServiceSlots{
				ServiceID:   svc.ID,
				ServiceCode: svc.Code,
				ServiceName: svc.Name,
			}
			for _, period := range domain.Periods {
				entry.stateFor(period).Booked = booked[k][svc.ID][period]
			}
			day.Services[i] = entry
		}

		resp.Days[d] = day
	}

	return resp
}

// truncateToDay drops the time-of-day component
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
