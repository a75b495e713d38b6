package get_schedule_policy

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	policy, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /schedule-policy - Failed to get policy: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule-policy - Policy retrieved successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, policy)
}
