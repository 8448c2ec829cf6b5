// Package api exposes the analysis engine over HTTP as a JSON API.
package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/match-edge/internal/analysis"
	"github.com/yourusername/match-edge/internal/config"
	"github.com/yourusername/match-edge/internal/models"
)

// AnalysisRequest is the JSON request body for a match analysis. Optional
// fields default from configuration.
type AnalysisRequest struct {
	LambdaHome              float64             `json:"lambda_home" validate:"required,gt=0"`
	LambdaAway              float64             `json:"lambda_away" validate:"required,gt=0"`
	DependenceRho           *float64            `json:"dependence_rho,omitempty" validate:"omitempty,gte=-1,lte=1"`
	MaxGoals                *int                `json:"max_goals,omitempty" validate:"omitempty,gte=0,lte=15"`
	UseDependenceCorrection *bool               `json:"use_dependence_correction,omitempty"`
	Source                  string              `json:"source,omitempty" validate:"omitempty,oneof=exact simulated"`
	Samples                 *int                `json:"samples,omitempty" validate:"omitempty,gt=0"`
	Seed                    *int64              `json:"seed,omitempty"`
	OverUnderThreshold      *float64            `json:"over_under_threshold,omitempty" validate:"omitempty,gt=0"`
	Prices                  models.MarketPrices `json:"prices"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalysisHandler serves analysis requests.
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	cfg      *config.Config
	cache    *ResponseCache
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(analyzer *analysis.Analyzer, cfg *config.Config, cache *ResponseCache, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		cfg:      cfg,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes attaches the handler's routes to the echo instance.
func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/analysis", h.Analyze)
}

// Analyze handles POST /api/v1/analysis.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &AnalysisRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if h.cache != nil {
		if cached, ok := h.cache.Get(req); ok {
			c.Response().Header().Set("X-Cache", "HIT")
			return c.JSON(http.StatusOK, cached)
		}
	}

	result, err := h.analyzer.Analyze(c.Request().Context(), h.toAnalysisRequest(req))
	if err != nil {
		if errors.Is(err, models.ErrInvalidParameter) || errors.Is(err, models.ErrUnknownSource) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		h.logger.WithError(err).Error("Analysis failed")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "analysis failed"})
	}

	if h.cache != nil {
		h.cache.Set(req, result)
	}
	return c.JSON(http.StatusOK, result)
}

// toAnalysisRequest merges the request with configured defaults.
func (h *AnalysisHandler) toAnalysisRequest(req *AnalysisRequest) analysis.Request {
	params := models.MatchParameters{
		LambdaHome:    req.LambdaHome,
		LambdaAway:    req.LambdaAway,
		DependenceRho: h.cfg.Model.DependenceRho,
		MaxGoals:      h.cfg.Model.MaxGoals,
	}
	if req.DependenceRho != nil {
		params.DependenceRho = *req.DependenceRho
	}
	if req.MaxGoals != nil {
		params.MaxGoals = *req.MaxGoals
	}

	out := analysis.Request{
		Parameters:              params,
		Prices:                  req.Prices,
		Source:                  models.SourceExact,
		UseDependenceCorrection: h.cfg.Model.UseDependenceCorrection,
		OverUnderThreshold:      h.cfg.Model.OverUnderThreshold,
		Samples:                 h.cfg.Simulation.Samples,
		Seed:                    h.cfg.Simulation.Seed,
		Workers:                 h.cfg.Simulation.Workers,
	}
	if req.Source != "" {
		out.Source = models.ProbabilitySource(req.Source)
	}
	if req.UseDependenceCorrection != nil {
		out.UseDependenceCorrection = *req.UseDependenceCorrection
	}
	if req.OverUnderThreshold != nil {
		out.OverUnderThreshold = *req.OverUnderThreshold
	}
	if req.Samples != nil {
		out.Samples = *req.Samples
	}
	if req.Seed != nil {
		out.Seed = *req.Seed
	}
	return out
}

// Health handles GET /healthz.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
