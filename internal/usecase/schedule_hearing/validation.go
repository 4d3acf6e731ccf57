package schedule_hearing

import (
	"fmt"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
)

// validateRequest validates the use case input
func validateRequest(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Period.IsValid() {
		return fmt.Errorf("%w: period must be AM or PM", ErrInvalidInput)
	}

	if req.MediationLevel < domain.MinMediationLevel || req.MediationLevel > domain.MaxMediationLevel {
		return fmt.Errorf("%w: mediationLevel must be between %d and %d",
			ErrInvalidInput, domain.MinMediationLevel, domain.MaxMediationLevel)
	}

	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

// serviceIDs collects the IDs of the given services
func serviceIDs(services []*domain.Service) []int64 {
	ids := make([]int64, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
	}
	return ids
}
