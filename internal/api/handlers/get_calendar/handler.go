package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getCalendar "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownGranularity = "некорректная гранулярность, ожидается day, week или month"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?granularity=day&date=2025-10-15
// granularity по умолчанию day, date по умолчанию сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = "day"
	}

	date := time.Now()
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		parsed, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid date: %s", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		UserID:      userID,
		Granularity: granularity,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrUnknownGranularity):
			h.logger.Warn("GET /calendar - Unknown granularity: %s", granularity)
			handlers.RespondBadRequest(w, msgUnknownGranularity)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar - Failed to build view: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Built %s view for user_id=%d", result.Granularity, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
