package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistraTodo(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	require.NotNil(t, m)

	assert.Panics(t, func() { NewMetrics(registry) }, "registrar dos veces en el mismo registry debe fallar")
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordHTTPRequest("GET", "/productos/", 200, 15*time.Millisecond)
	m.RecordHTTPRequest("GET", "/productos/", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/productos/", "200")))
}

func TestObserveDB_EtiquetaEstado(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveDB("query", nil)
	m.ObserveDB("query", errors.New("boom"))
	m.ObserveDB("query", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBOperationsTotal.WithLabelValues("query", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBOperationsTotal.WithLabelValues("query", "error")))
}

func TestRecordLoginYBarcode(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordBarcodeLookup("found")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BarcodeLookupsTotal.WithLabelValues("found")))
}

func TestHandler_ExponeMetricas(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.AlertsResolvedTotal.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "sgi_alerts_resolved_total 1")
}
