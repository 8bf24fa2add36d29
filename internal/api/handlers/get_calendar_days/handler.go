package get_calendar_days

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getCalendarDays "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_calendar_days"
)

const (
	msgInvalidQuery        = "некорректные параметры: from ожидается в формате YYYY-MM-DD, days целое число"
	msgInvalidRange        = "некорректный диапазон дней"
	msgCalendarUnavailable = "календарь праздников временно недоступен"
)

type Handler struct {
	useCase GetCalendarDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/days
// Query params: from (optional, YYYY-MM-DD), days (optional, 1..62)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(query.Get("from"), query.Get("days"))
	if err != nil {
		h.logger.Warn("GET /calendar/days - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarDays.ErrInvalidInput):
			h.logger.Warn("GET /calendar/days - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCalendarDays.ErrCalendarUnavailable):
			h.logger.Error("GET /calendar/days - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /calendar/days - Failed to get days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
