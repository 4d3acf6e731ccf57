package get_weekly_availability

import (
	"net/http"
	"time"

	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/domain"
	getWeeklyAvailability "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/get_weekly_availability"
)

const (
	msgInvalidWeekStart = "invalid weekStart, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetWeeklyAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?weekStart=2025-03-10
//
// Without weekStart the grid anchors on today.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekStart := time.Now()

	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid weekStart: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidWeekStart)
			return
		}
		weekStart = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getWeeklyAvailability.Request{WeekStart: weekStart})
	if err != nil {
		h.logger.Error("GET /availability - Failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
