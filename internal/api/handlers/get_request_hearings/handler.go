package get_request_hearings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings"
)

const (
	msgInvalidRequestID = "invalid request ID"
	msgRequestNotFound  = "summon request not found"
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

// Handle GET /api/v1/requests/{requestId}/hearings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		h.logger.Warn("GET /requests/{id}/hearings - Invalid request ID: %s", vars["requestId"])
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetRequestHearings(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, hearings.ErrRequestNotFound) {
			h.logger.Warn("GET /requests/%d/hearings - Request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /requests/%d/hearings - Failed to list hearings: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
