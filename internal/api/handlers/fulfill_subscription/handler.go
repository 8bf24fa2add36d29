package fulfill_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	advanceSubscription "github.com/m04kA/SMC-DeliveryService/internal/usecase/advance_subscription"
)

const (
	msgInvalidSubscriptionID = "некорректный ID подписки"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidFulfilledAt    = "некорректный формат fulfilledAt, ожидается RFC3339"
	msgSubscriptionNotFound  = "подписка не найдена"
	msgCalendarUnavailable   = "календарь праздников временно недоступен"
	msgNoEligibleDate        = "нет доступной даты доставки в ближайшие дни"
	msgConflict              = "подписка изменена параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase AdvanceSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase AdvanceSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/subscriptions/{subscriptionId}/fulfilled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	subscriptionID, err := strconv.ParseInt(vars["subscriptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /subscriptions/{id}/fulfilled - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	var req FulfillSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions/{id}/fulfilled - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(subscriptionID)
	if err != nil {
		h.logger.Warn("POST /subscriptions/{id}/fulfilled - Invalid fulfilledAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFulfilledAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, advanceSubscription.ErrInvalidInput):
			h.logger.Warn("POST /subscriptions/{id}/fulfilled - Invalid input: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondBadRequest(w, msgInvalidSubscriptionID)

		case errors.Is(err, advanceSubscription.ErrSubscriptionNotFound):
			h.logger.Warn("POST /subscriptions/{id}/fulfilled - Subscription not found: subscription_id=%d", subscriptionID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		case errors.Is(err, advanceSubscription.ErrConflict):
			h.logger.Warn("POST /subscriptions/{id}/fulfilled - Concurrent update: subscription_id=%d", subscriptionID)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, advanceSubscription.ErrCalendarUnavailable):
			h.logger.Error("POST /subscriptions/{id}/fulfilled - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, advanceSubscription.ErrNoEligibleDate):
			h.logger.Warn("POST /subscriptions/{id}/fulfilled - No eligible date: subscription_id=%d", subscriptionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoEligibleDate)

		default:
			h.logger.Error("POST /subscriptions/{id}/fulfilled - Failed to advance subscription: subscription_id=%d, error=%v", subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions/{id}/fulfilled - Subscription advanced: subscription_id=%d, next=%s, already_fulfilled=%t",
		subscriptionID, result.Next.Date, result.AlreadyFulfilled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
