package get_hearing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings"
)

const (
	msgInvalidScheduleID = "invalid schedule ID"
	msgScheduleNotFound  = "hearing schedule not found"
)

type Handler struct {
	service HearingsService
	logger  Logger
}

func NewHandler(service HearingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hearings/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("GET /hearings/{id} - Invalid schedule ID: %s", vars["scheduleId"])
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	result, err := h.service.GetByID(r.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, hearings.ErrScheduleNotFound) {
			h.logger.Warn("GET /hearings/%d - Not found", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)
			return
		}
		h.logger.Error("GET /hearings/%d - Failed to get hearing: %v", scheduleID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
