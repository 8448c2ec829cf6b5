package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-edge/internal/analysis"
	"github.com/yourusername/match-edge/internal/config"
)

func newTestHandler(t *testing.T) *AnalysisHandler {
	t.Helper()

	cfg, err := config.LoadWithDefaults("")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	analyzer := analysis.NewAnalyzer(analysis.Settings{
		KellyFractionCap:    cfg.Value.KellyFractionCap,
		Bankroll:            decimal.NewFromFloat(cfg.Value.Bankroll),
		MinEdge:             cfg.Value.MinEdge,
		ConfidenceThreshold: cfg.Value.ConfidenceThreshold,
	}, logger)

	return NewAnalysisHandler(analyzer, cfg, NewResponseCache(time.Minute), logger)
}

func postAnalysis(t *testing.T, h *AnalysisHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Analyze(c))
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := postAnalysis(t, h, `{"lambda_home": 1.8, "lambda_away": 1.2}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result analysis.MatchAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 1.8, result.Parameters.LambdaHome)
	assert.InDelta(t, 1.0, result.Outcomes.Total(), 1e-9)
	assert.NotEmpty(t, result.TopScorelines)
	assert.Nil(t, result.Simulation)
}

func TestAnalyzeEndpointSimulated(t *testing.T) {
	h := newTestHandler(t)

	rec := postAnalysis(t, h, `{"lambda_home": 1.8, "lambda_away": 1.2, "source": "simulated", "samples": 5000, "seed": 3}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result analysis.MatchAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.NotNil(t, result.Simulation)
	assert.Equal(t, 5000, result.Simulation.Samples)
}

func TestAnalyzeEndpointWithPrices(t *testing.T) {
	h := newTestHandler(t)

	rec := postAnalysis(t, h, `{"lambda_home": 1.8, "lambda_away": 1.2, "prices": {"home_win": 2.4, "draw": 3.5}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result analysis.MatchAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Len(t, result.Markets, 2)
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing lambdas", `{}`},
		{"negative lambda", `{"lambda_home": -1, "lambda_away": 1.2}`},
		{"unknown source", `{"lambda_home": 1.8, "lambda_away": 1.2, "source": "guess"}`},
		{"rho out of range", `{"lambda_home": 1.8, "lambda_away": 1.2, "dependence_rho": 2.0}`},
		{"malformed json", `{"lambda_home": `},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAnalysis(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestAnalyzeEndpointCacheHit(t *testing.T) {
	h := newTestHandler(t)
	body := `{"lambda_home": 1.5, "lambda_away": 1.1, "seed": 9}`

	first := postAnalysis(t, h, body)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Cache"))

	second := postAnalysis(t, h, body)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	var a, b analysis.MatchAnalysis
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.ID, b.ID)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
