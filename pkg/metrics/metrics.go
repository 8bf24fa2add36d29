package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса.
// Все методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	scheduleTotal       *prometheus.CounterVec
	oracleLookups       *prometheus.CounterVec
	oracleDuration      *prometheus.HistogramVec
	sweepAdvanced       prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		scheduleTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "schedule_computations_total",
			Help:      "Delivery date computations by mode and outcome",
		}, []string{"mode", "outcome"}),
		oracleLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "calendar_oracle_lookups_total",
			Help:      "Holiday oracle lookups by source and outcome",
		}, []string{"source", "outcome"}),
		oracleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "calendar_oracle_lookup_duration_seconds",
			Help:      "Holiday oracle lookup latency",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		}, []string{"source"}),
		sweepAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "subscription_sweep_advanced_total",
			Help:      "Subscription anchors advanced by the periodic sweep",
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.scheduleTotal,
		m.oracleLookups,
		m.oracleDuration,
		m.sweepAdvanced,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveSchedule фиксирует результат расчета даты доставки
func (m *Metrics) ObserveSchedule(mode, outcome string) {
	if m == nil {
		return
	}
	m.scheduleTotal.WithLabelValues(mode, outcome).Inc()
}

// ObserveOracleLookup фиксирует обращение к источнику праздников
func (m *Metrics) ObserveOracleLookup(source string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.oracleLookups.WithLabelValues(source, outcome).Inc()
	m.oracleDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// AddSweepAdvanced увеличивает счетчик подписок, сдвинутых периодической задачей
func (m *Metrics) AddSweepAdvanced(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sweepAdvanced.Add(float64(n))
}
