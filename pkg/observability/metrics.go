package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas Prometheus de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOperationsTotal *prometheus.CounterVec

	MovementsTotal        *prometheus.CounterVec
	BarcodeLookupsTotal   *prometheus.CounterVec
	LoginAttemptsTotal    *prometheus.CounterVec
	AlertsResolvedTotal   prometheus.Counter
	ReportsGeneratedTotal prometheus.Counter
}

// NewMetrics crea y registra las métricas en el registry indicado.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgi_http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sgi_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DBOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgi_db_operations_total",
				Help: "Total de operaciones contra PostgreSQL",
			},
			[]string{"operation", "status"},
		),
		MovementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgi_movements_total",
				Help: "Movimientos de inventario registrados",
			},
			[]string{"status"},
		),
		BarcodeLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgi_barcode_lookups_total",
				Help: "Consultas al servicio externo de códigos de barras",
			},
			[]string{"result"},
		),
		LoginAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sgi_login_attempts_total",
				Help: "Intentos de inicio de sesión",
			},
			[]string{"result"},
		),
		AlertsResolvedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sgi_alerts_resolved_total",
			Help: "Alertas de stock resueltas",
		}),
		ReportsGeneratedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sgi_reports_generated_total",
			Help: "Reportes PDF generados",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOperationsTotal,
		m.MovementsTotal,
		m.BarcodeLookupsTotal,
		m.LoginAttemptsTotal,
		m.AlertsResolvedTotal,
		m.ReportsGeneratedTotal,
	)
	return m
}

// RecordHTTPRequest registra una petición HTTP terminada.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDB cuenta una operación de base de datos; firma compatible con postgres.Observer.
func (m *Metrics) ObserveDB(op string, err error) {
	m.DBOperationsTotal.WithLabelValues(op, statusLabel(err)).Inc()
}

// RecordMovement cuenta un intento de registro de movimiento.
func (m *Metrics) RecordMovement(err error) {
	m.MovementsTotal.WithLabelValues(statusLabel(err)).Inc()
}

// RecordBarcodeLookup cuenta una consulta de código: found, not_found o error.
func (m *Metrics) RecordBarcodeLookup(result string) {
	m.BarcodeLookupsTotal.WithLabelValues(result).Inc()
}

// RecordLogin cuenta un intento de login.
func (m *Metrics) RecordLogin(ok bool) {
	if ok {
		m.LoginAttemptsTotal.WithLabelValues("success").Inc()
		return
	}
	m.LoginAttemptsTotal.WithLabelValues("failure").Inc()
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
