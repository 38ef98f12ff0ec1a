package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveQuery("list_patients", time.Now(), nil)
	m.ObserveQuery("list_patients", time.Now(), nil)
	m.ObserveQuery("list_patients", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("list_patients", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("list_patients", "error")))
}

func TestObserveQueryNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveQuery("noop", time.Now(), nil) })
}

func TestHandler(t *testing.T) {
	m := NewMetrics("hospital_api")
	m.RequestTotal.WithLabelValues("GET", "/patients", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hospital_api_requests_total{method="GET",path="/patients",status="200"} 1`)
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("hospital_api")
		NewMetrics("hospital_api")
	})
}
