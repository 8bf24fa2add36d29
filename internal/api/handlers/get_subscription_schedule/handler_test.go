package get_subscription_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	getSubscriptionSchedule "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_subscription_schedule"
	"github.com/m04kA/SMC-DeliveryService/pkg/logger"
)

type fakeUseCase struct {
	got  *getSubscriptionSchedule.Request
	resp *getSubscriptionSchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSubscriptionSchedule.Request) (*getSubscriptionSchedule.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/subscriptions/{subscriptionId}/schedule", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getSubscriptionSchedule.Response{
		Subscription: domain.SubscriptionAnchor{
			ID:               9,
			PreferredWeekday: time.Monday,
			Cadence:          domain.CadenceWeekly,
			AnchorDate:       domain.NewCalendarDate(2026, time.September, 21),
			NextDeliveryDate: domain.NewCalendarDate(2026, time.September, 22),
		},
		Deliveries: []domain.ProjectedDelivery{
			{
				Date:      domain.NewCalendarDate(2026, time.September, 22),
				IdealDate: domain.NewCalendarDate(2026, time.September, 21),
				DayStatus: domain.DayRegular,
				Shifted:   true,
			},
			{
				Date:      domain.NewCalendarDate(2026, time.September, 28),
				IdealDate: domain.NewCalendarDate(2026, time.September, 28),
				DayStatus: domain.DayRegular,
			},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := serve(h, "/api/v1/subscriptions/9/schedule?count=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), uc.got.SubscriptionID)
	assert.Equal(t, 2, uc.got.Count)

	var resp SubscriptionScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "MONDAY", resp.Subscription.PreferredWeekday)
	require.NotNil(t, resp.Subscription.NextDeliveryDate)
	assert.Equal(t, "2026-09-22", *resp.Subscription.NextDeliveryDate)
	require.Len(t, resp.Deliveries, 2)
	assert.True(t, resp.Deliveries[0].Shifted)
	assert.Equal(t, "2026-09-21", resp.Deliveries[0].IdealDate)
	assert.Equal(t, "2026-09-28", resp.Deliveries[1].Date)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad id", target: "/api/v1/subscriptions/abc/schedule", wantStatus: http.StatusBadRequest},
		{name: "bad count", target: "/api/v1/subscriptions/1/schedule?count=many", wantStatus: http.StatusBadRequest},
		{name: "count out of range", target: "/api/v1/subscriptions/1/schedule?count=100", err: getSubscriptionSchedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/subscriptions/1/schedule", err: getSubscriptionSchedule.ErrSubscriptionNotFound, wantStatus: http.StatusNotFound},
		{name: "calendar unavailable", target: "/api/v1/subscriptions/1/schedule", err: getSubscriptionSchedule.ErrCalendarUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "no eligible date", target: "/api/v1/subscriptions/1/schedule", err: getSubscriptionSchedule.ErrNoEligibleDate, wantStatus: http.StatusUnprocessableEntity},
		{name: "internal", target: "/api/v1/subscriptions/1/schedule", err: getSubscriptionSchedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := serve(h, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
