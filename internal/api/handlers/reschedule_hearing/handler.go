package reschedule_hearing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	rescheduleHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/reschedule_hearing"
)

const (
	msgInvalidScheduleID  = "invalid schedule ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid hearing date, expected YYYY-MM-DD"
	msgScheduleNotFound   = "hearing schedule not found"
	msgNotActive          = "this hearing is no longer active"
	msgServiceNotFound    = "service not found"
	msgSlotTaken          = "the new time slot was just taken, pick another"
	msgDateInPast         = "the new hearing date is in the past"
	msgInvalidInput       = "invalid reschedule data"
	msgRescheduleFailed   = "could not complete reschedule, please retry"
)

type Handler struct {
	useCase RescheduleHearingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleHearingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hearings/{scheduleId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("POST /hearings/{id}/reschedule - Invalid schedule ID: %s", vars["scheduleId"])
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req RescheduleHearingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hearings/%d/reschedule - Invalid request body: %v", scheduleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(scheduleID)
	if err != nil {
		h.logger.Warn("POST /hearings/%d/reschedule - Failed to parse request: %v", scheduleID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleHearing.ErrScheduleNotFound):
			h.logger.Warn("POST /hearings/%d/reschedule - Schedule not found", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, rescheduleHearing.ErrNotActive):
			h.logger.Warn("POST /hearings/%d/reschedule - Schedule not active", scheduleID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, rescheduleHearing.ErrServiceNotFound):
			h.logger.Warn("POST /hearings/%d/reschedule - Service not found: service_id=%d", scheduleID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleHearing.ErrSlotTaken):
			h.logger.Warn("POST /hearings/%d/reschedule - Slot taken", scheduleID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, rescheduleHearing.ErrDateInPast):
			h.logger.Warn("POST /hearings/%d/reschedule - Date in past: date=%s", scheduleID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleHearing.ErrInvalidInput):
			h.logger.Warn("POST /hearings/%d/reschedule - Invalid input: %v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleHearing.ErrSchedulingFailed):
			h.logger.Error("POST /hearings/%d/reschedule - Reschedule failed: %v", scheduleID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRescheduleFailed)

		default:
			h.logger.Error("POST /hearings/%d/reschedule - Failed to reschedule: %v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hearings/%d/reschedule - Hearing rescheduled: new schedule_id=%d", scheduleID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
