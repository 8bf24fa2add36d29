package get_subscription_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getSubscriptionSchedule "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_subscription_schedule"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgInvalidCount          = "некорректное количество доставок"
	msgSubscriptionNotFound  = "подписка не найдена"
	msgCalendarUnavailable   = "календарь праздников временно недоступен"
	msgNoEligibleDate        = "нет доступной даты доставки в ближайшие дни"
)

type Handler struct {
	useCase GetSubscriptionScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetSubscriptionScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/subscriptions/{subscriptionId}/schedule
// Query params: count (optional, 1..26)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /subscriptions/{id}/schedule - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(subscriptionID, r.URL.Query().Get("count"))
	if err != nil {
		h.logger.Warn("GET /subscriptions/{id}/schedule - Invalid count: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSubscriptionSchedule.ErrInvalidInput):
			h.logger.Warn("GET /subscriptions/{id}/schedule - Invalid input: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondBadRequest(w, msgInvalidCount)

		case errors.Is(err, getSubscriptionSchedule.ErrSubscriptionNotFound):
			h.logger.Warn("GET /subscriptions/{id}/schedule - Subscription not found: subscription_id=%d", subscriptionID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		case errors.Is(err, getSubscriptionSchedule.ErrCalendarUnavailable):
			h.logger.Error("GET /subscriptions/{id}/schedule - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, getSubscriptionSchedule.ErrNoEligibleDate):
			h.logger.Warn("GET /subscriptions/{id}/schedule - No eligible date: subscription_id=%d", subscriptionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoEligibleDate)

		default:
			h.logger.Error("GET /subscriptions/{id}/schedule - Failed to project schedule: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /subscriptions/{id}/schedule - Schedule projected: subscription_id=%d, deliveries=%d",
		subscriptionID, len(result.Deliveries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
