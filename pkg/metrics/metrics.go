package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик Prometheus сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	BookingsCreatedTotal *prometheus.CounterVec
	BookingStatusChanges *prometheus.CounterVec
	LoginAttemptsTotal   *prometheus.CounterVec
	WizardsOpen          *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of database queries",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsCreatedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created by the wizard",
			ConstLabels: constLabels,
		}, []string{"payment_method"}),

		BookingStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_changes_total",
			Help:        "Total number of booking status changes",
			ConstLabels: constLabels,
		}, []string{"status"}),

		LoginAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "login_attempts_total",
			Help:        "Total number of login attempts",
			ConstLabels: constLabels,
		}, []string{"result"}),

		WizardsOpen: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "booking_wizards_open",
			Help:        "Number of booking wizards currently in progress",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(seconds)
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(paymentMethod string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(paymentMethod).Inc()
}

// BookingStatusChanged увеличивает счетчик смен статуса
func (m *Metrics) BookingStatusChanged(status string) {
	if m == nil {
		return
	}
	m.BookingStatusChanges.WithLabelValues(status).Inc()
}

// LoginAttempt записывает попытку входа
func (m *Metrics) LoginAttempt(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// SetWizardsOpen выставляет текущее число открытых мастеров бронирования
func (m *Metrics) SetWizardsOpen(n int) {
	if m == nil {
		return
	}
	m.WizardsOpen.WithLabelValues().Set(float64(n))
}
