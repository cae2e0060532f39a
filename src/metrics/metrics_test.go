package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.QuantsCreated.Inc()
	m.ObserveValidationFailure("assay_barcode", "used")
	m.ObserveValidationFailure("assay_barcode", "used")
	m.ObserveSearch("Find user by swipecard code", "found")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuantsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("assay_barcode", "used")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchRequests.WithLabelValues("Find user by swipecard code", "found")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quanti_quants_created_total 1")
	assert.Contains(t, w.Body.String(), `quanti_quant_validation_failures_total{field="assay_barcode",kind="used"} 2`)
}
