package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/invest-hub/backend/internal/analytics"
	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/logger"
)

// AnalyticsHandler handles analytics API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalyticsHandler struct {
	service   *portfolio.Service
	priceRepo *marketdata.PriceRepository
	config    *config.Config
	logger    *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	service *portfolio.Service,
	priceRepo *marketdata.PriceRepository,
	cfg *config.Config,
	log *logger.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:   service,
		priceRepo: priceRepo,
		config:    cfg,
		logger:    log,
	}
}

// GetMetrics returns portfolio performance metrics
// GET /api/analytics/metrics
func (h *AnalyticsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.service.ValueHistory(ctx, h.config.Engine.HistoryDays)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get value history")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve value history")
		return
	}

	marketReturns := h.benchmarkReturns(r)

	metrics := analytics.ComputePerformanceMetrics(history, marketReturns, h.config.Engine.RiskFreeRate)
	respondJSON(w, http.StatusOK, metrics)
}

// GetRisk returns the portfolio risk analysis
// GET /api/analytics/risk
func (h *AnalyticsHandler) GetRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.service.ValueHistory(ctx, h.config.Engine.HistoryDays)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get value history")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve value history")
		return
	}

	values := make([]float64, len(history))
	for i, p := range history {
		values[i] = p.Value
	}

	marketReturns := h.benchmarkReturns(r)

	analysis := analytics.AnalyzeRisk(values, marketReturns, h.config.Engine.RiskFreeRate)
	respondJSON(w, http.StatusOK, analysis)
}

// GetCorrelation returns the pairwise correlation matrix of held symbols
// GET /api/analytics/correlation
func (h *AnalyticsHandler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	positions, err := h.service.Positions(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get positions")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve positions")
		return
	}

	prices := make(map[string][]float64, len(positions))
	for _, p := range positions {
		closes, err := h.priceRepo.GetCloses(ctx, p.Symbol, h.config.Engine.HistoryDays)
		if err != nil {
			h.logger.WithError(err).Error("Failed to get closes for correlation")
			respondError(w, http.StatusInternalServerError, "Failed to retrieve price history")
			return
		}
		prices[p.Symbol] = closes
	}

	matrix := analytics.CorrelationMatrix(prices)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"correlation_matrix": matrix,
		"symbols":            len(matrix),
	})
}

// OptimizeRequest represents an optimization request
// RiskTolerance가 없으면 RiskProfile을 매핑해서 사용
type OptimizeRequest struct {
	RiskTolerance *float64 `json:"risk_tolerance,omitempty"`
	RiskProfile   string   `json:"risk_profile,omitempty"` // conservative/moderate/aggressive
	TargetReturn  *float64 `json:"target_return,omitempty"`
}

// 프로필 → 위험성향 매핑
var riskProfileTolerance = map[string]float64{
	"conservative": 0.25,
	"moderate":     0.50,
	"aggressive":   0.80,
}

// Optimize returns a recommended allocation
// POST /api/analytics/optimize
func (h *AnalyticsHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 경계 검증: 엔진은 정상 입력을 가정하므로 여기서 거름
	riskTolerance := 0.5
	switch {
	case req.RiskTolerance != nil:
		if *req.RiskTolerance < 0 || *req.RiskTolerance > 1 {
			respondError(w, http.StatusBadRequest, "risk_tolerance must be between 0 and 1")
			return
		}
		riskTolerance = *req.RiskTolerance
	case req.RiskProfile != "":
		rt, ok := riskProfileTolerance[req.RiskProfile]
		if !ok {
			respondError(w, http.StatusBadRequest, "risk_profile must be one of: conservative, moderate, aggressive")
			return
		}
		riskTolerance = rt
	}

	positions, err := h.service.Positions(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get positions")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve positions")
		return
	}

	result, err := analytics.OptimizePortfolio(positions, riskTolerance, req.TargetReturn)
	if err != nil {
		if errors.Is(err, analytics.ErrNoPositions) {
			respondError(w, http.StatusBadRequest, "Portfolio has no positions to optimize")
			return
		}
		h.logger.WithError(err).Error("Optimization failed")
		respondError(w, http.StatusInternalServerError, "Optimization failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// benchmarkReturns 벤치마크 수익률 조회 (실패 시 베타 기본값으로 폴백)
func (h *AnalyticsHandler) benchmarkReturns(r *http.Request) []float64 {
	closes, err := h.priceRepo.GetCloses(r.Context(), h.config.MarketData.BenchmarkSymbol, h.config.Engine.HistoryDays)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to get benchmark closes, beta will default to 1.0")
		return nil
	}
	return analytics.CalculateReturns(closes)
}
