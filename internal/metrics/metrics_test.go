package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistry(t *testing.T) {
	registry := InitRegistry()
	require.NotNil(t, registry)

	// Repeated initialization returns the same registry without
	// re-registering collectors.
	assert.Same(t, registry, InitRegistry())
	assert.Same(t, registry, GetRegistry())
}

func TestRecordHelpers(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordAnalysis("exact", "success")
		RecordAnalysis("simulated", "failure")
		RecordValueSignal("home_win")
		ObserveDistributionBuild(5 * time.Millisecond)
		ObserveSimulation(120*time.Millisecond, 10000)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	InitRegistry()
	RecordAnalysis("exact", "success")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "match_edge_analyses_total")
}
