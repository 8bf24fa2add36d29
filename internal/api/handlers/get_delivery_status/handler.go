package get_delivery_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getDeliveryStatus "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_status"
)

const (
	msgInvalidAt           = "некорректный формат параметра at, ожидается RFC3339"
	msgCalendarUnavailable = "календарь праздников временно недоступен"
	msgNoEligibleDate      = "нет доступной даты доставки в ближайшие дни"
)

type Handler struct {
	useCase GetDeliveryStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetDeliveryStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/deliveries/status
// Query params: at (optional, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("at"))
	if err != nil {
		h.logger.Warn("GET /deliveries/status - Invalid at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDeliveryStatus.ErrCalendarUnavailable):
			h.logger.Error("GET /deliveries/status - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, getDeliveryStatus.ErrNoEligibleDate):
			h.logger.Warn("GET /deliveries/status - No eligible date: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoEligibleDate)

		default:
			h.logger.Error("GET /deliveries/status - Failed to describe status: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
