package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	slotsServedTotal    *prometheus.CounterVec
	pushSentTotal       *prometheus.CounterVec
	remindersTotal      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		slotsServedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_served_total",
			Help:        "Time slots returned by the slots endpoint",
			ConstLabels: labels,
		}, []string{"available"}),
		pushSentTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "push_notifications_total",
			Help:        "Web push delivery attempts",
			ConstLabels: labels,
		}, []string{"status"}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_reminders_total",
			Help:        "Reminder job outcomes per booking",
			ConstLabels: labels,
		}, []string{"outcome"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.slotsServedTotal,
		m.pushSentTotal,
		m.remindersTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveSlots фиксирует количество отданных слотов
func (m *Metrics) ObserveSlots(available, taken int) {
	if m == nil {
		return
	}
	m.slotsServedTotal.WithLabelValues("true").Add(float64(available))
	m.slotsServedTotal.WithLabelValues("false").Add(float64(taken))
}

// ObservePush фиксирует результат отправки push-уведомления
// status: sent | gone | failed
func (m *Metrics) ObservePush(status string) {
	if m == nil {
		return
	}
	m.pushSentTotal.WithLabelValues(status).Inc()
}

// ObserveReminder фиксирует результат обработки напоминания
// outcome: sent | skipped | failed
func (m *Metrics) ObserveReminder(outcome string) {
	if m == nil {
		return
	}
	m.remindersTotal.WithLabelValues(outcome).Inc()
}
