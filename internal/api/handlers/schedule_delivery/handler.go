package schedule_delivery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	scheduleDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/schedule_delivery"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRequestedAt  = "некорректный формат requestedAt, ожидается RFC3339"
	msgInvalidInput        = "некорректные параметры доставки"
	msgCalendarUnavailable = "календарь праздников временно недоступен"
	msgNoEligibleDate      = "нет доступной даты доставки в ближайшие дни"
)

type Handler struct {
	useCase ScheduleDeliveryUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleDeliveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/deliveries/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleDeliveryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /deliveries/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /deliveries/schedule - Invalid requestedAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestedAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleDelivery.ErrInvalidInput):
			h.logger.Warn("POST /deliveries/schedule - Invalid input: mode=%s, error=%v", req.Mode, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, scheduleDelivery.ErrCalendarUnavailable):
			h.logger.Error("POST /deliveries/schedule - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, scheduleDelivery.ErrNoEligibleDate):
			h.logger.Warn("POST /deliveries/schedule - No eligible date: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoEligibleDate)

		default:
			h.logger.Error("POST /deliveries/schedule - Failed to schedule delivery: mode=%s, error=%v", req.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /deliveries/schedule - Delivery scheduled: mode=%s, date=%s", result.Mode, result.ScheduledDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
