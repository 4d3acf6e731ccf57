package schedule_hearing

import (
	"errors"
	"net/http"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	scheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/schedule_hearing"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid hearing date, expected YYYY-MM-DD"
	msgSlotTaken          = "this time slot was just taken, pick another"
	msgAlreadyScheduled   = "this case already has a scheduled hearing"
	msgDateInPast         = "the hearing date is in the past"
	msgRequestNotFound    = "summon request not found"
	msgRequestClosed      = "this case is already resolved or closed"
	msgServiceNotFound    = "service not found"
	msgInvalidInput       = "invalid scheduling data"
	msgSchedulingFailed   = "could not complete scheduling, please retry"
)

type Handler struct {
	useCase ScheduleHearingUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleHearingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hearings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleHearingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hearings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /hearings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleHearing.ErrSlotTaken):
			h.logger.Warn("POST /hearings - Slot taken: request_id=%d", req.RequestID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, scheduleHearing.ErrAlreadyScheduled):
			h.logger.Warn("POST /hearings - Already scheduled: request_id=%d", req.RequestID)
			handlers.RespondConflict(w, msgAlreadyScheduled)

		case errors.Is(err, scheduleHearing.ErrDateInPast):
			h.logger.Warn("POST /hearings - Date in past: request_id=%d, date=%s", req.RequestID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduleHearing.ErrRequestNotFound):
			h.logger.Warn("POST /hearings - Request not found: request_id=%d", req.RequestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, scheduleHearing.ErrRequestClosed):
			h.logger.Warn("POST /hearings - Request closed: request_id=%d", req.RequestID)
			handlers.RespondConflict(w, msgRequestClosed)

		case errors.Is(err, scheduleHearing.ErrServiceNotFound):
			h.logger.Warn("POST /hearings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, scheduleHearing.ErrInvalidInput):
			h.logger.Warn("POST /hearings - Invalid input: request_id=%d: %v", req.RequestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, scheduleHearing.ErrSchedulingFailed):
			h.logger.Error("POST /hearings - Scheduling failed: request_id=%d, error=%v", req.RequestID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSchedulingFailed)

		default:
			h.logger.Error("POST /hearings - Failed to schedule hearing: request_id=%d, error=%v", req.RequestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hearings - Hearing scheduled: schedule_id=%d, request_id=%d", result.ID, req.RequestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
