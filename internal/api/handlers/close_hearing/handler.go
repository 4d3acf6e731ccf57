package close_hearing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	closeHearing "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/close_hearing"
)

const (
	msgInvalidScheduleID  = "invalid schedule ID"
	msgInvalidRequestBody = "invalid request body"
	msgScheduleNotFound   = "hearing schedule not found"
	msgNotActive          = "this hearing is no longer active"
	msgInvalidOutcome     = "invalid hearing outcome"
)

type Handler struct {
	useCase CloseHearingUseCase
	logger  Logger
}

func NewHandler(useCase CloseHearingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hearings/{scheduleId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("POST /hearings/{id}/close - Invalid schedule ID: %s", vars["scheduleId"])
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req CloseHearingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hearings/%d/close - Invalid request body: %v", scheduleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(scheduleID)); err != nil {
		switch {
		case errors.Is(err, closeHearing.ErrScheduleNotFound):
			h.logger.Warn("POST /hearings/%d/close - Schedule not found", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, closeHearing.ErrNotActive):
			h.logger.Warn("POST /hearings/%d/close - Schedule not active", scheduleID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, closeHearing.ErrInvalidInput):
			h.logger.Warn("POST /hearings/%d/close - Invalid input: %v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		default:
			h.logger.Error("POST /hearings/%d/close - Failed to close hearing: %v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hearings/%d/close - Hearing closed: outcome=%s", scheduleID, req.Outcome)
	handlers.RespondJSON(w, http.StatusOK, CloseHearingResponse{
		ScheduleID: scheduleID,
		Outcome:    req.Outcome,
		Status:     string(domain.ScheduleStatusClosed),
	})
}
