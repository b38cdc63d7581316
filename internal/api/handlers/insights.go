package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wonny/invest-hub/backend/internal/analytics"
	"github.com/wonny/invest-hub/backend/internal/insights"
	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/logger"
)

// InsightsHandler handles ML-flavored insight endpoints
// ⭐ SSOT: 인사이트 API 핸들러는 이 구조체에서만
type InsightsHandler struct {
	service     *portfolio.Service
	priceRepo   *marketdata.PriceRepository
	predictor   *insights.Predictor
	detector    *insights.AnomalyDetector
	recommender *insights.Recommender
	thresholds  insights.Thresholds
	config      *config.Config
	logger      *logger.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	service *portfolio.Service,
	priceRepo *marketdata.PriceRepository,
	predictor *insights.Predictor,
	detector *insights.AnomalyDetector,
	recommender *insights.Recommender,
	cfg *config.Config,
	log *logger.Logger,
) *InsightsHandler {
	return &InsightsHandler{
		service:     service,
		priceRepo:   priceRepo,
		predictor:   predictor,
		detector:    detector,
		recommender: recommender,
		thresholds:  insights.DefaultThresholds(),
		config:      cfg,
		logger:      log,
	}
}

// PredictPrice returns short-horizon price predictions for a symbol
// GET /api/ml/predict/{symbol}?horizons=1,7,30
func (h *InsightsHandler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	horizons, err := parseHorizons(r.URL.Query().Get("horizons"), h.config.Engine.DefaultHorizons)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	prices, ok := h.loadCloses(w, r, symbol)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.predictor.Predict(symbol, prices, horizons))
}

// DetectAnomaly flags an unusual latest-period return for a symbol
// GET /api/ml/anomaly/{symbol}
func (h *InsightsHandler) DetectAnomaly(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	prices, ok := h.loadCloses(w, r, symbol)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.detector.Detect(symbol, prices))
}

// DetectPatterns returns technical pattern flags for a symbol
// GET /api/ml/patterns/{symbol}
func (h *InsightsHandler) DetectPatterns(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	prices, ok := h.loadCloses(w, r, symbol)
	if !ok {
		return
	}

	flags := insights.DetectPatterns(prices, h.thresholds)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":   symbol,
		"patterns": flags,
	})
}

// ForecastVolatility returns the forward volatility estimate for a symbol
// GET /api/ml/volatility/{symbol}
func (h *InsightsHandler) ForecastVolatility(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	prices, ok := h.loadCloses(w, r, symbol)
	if !ok {
		return
	}

	returns := analytics.CalculateReturns(prices)
	forecast := insights.ForecastVolatility(returns, h.thresholds)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":              symbol,
		"forecast_volatility": forecast,
		"sample_size":         len(returns),
	})
}

// RiskScore returns the composite risk score for a symbol
// GET /api/ml/risk-score/{symbol}
func (h *InsightsHandler) RiskScore(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	prices, ok := h.loadCloses(w, r, symbol)
	if !ok {
		return
	}

	score := insights.ScoreRisk(prices, h.thresholds)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":     symbol,
		"risk_score": score.Score,
		"risk_level": score.Level,
	})
}

// GetRecommendations returns rule-based diagnostics over current holdings
// GET /api/ml/recommendations?risk_profile=moderate
// risk_profile은 경계에서 검증만 한다: 진단 규칙 자체는 성향과 무관
func (h *InsightsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if profile := r.URL.Query().Get("risk_profile"); profile != "" {
		if _, ok := riskProfileTolerance[profile]; !ok {
			respondError(w, http.StatusBadRequest, "risk_profile must be one of: conservative, moderate, aggressive")
			return
		}
	}

	positions, err := h.service.Positions(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get positions")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve positions")
		return
	}

	recommendations, err := h.recommender.Recommend(positions)
	if err != nil {
		if errors.Is(err, analytics.ErrNoPositions) {
			respondError(w, http.StatusBadRequest, "Portfolio has no positions")
			return
		}
		h.logger.WithError(err).Error("Recommendation failed")
		respondError(w, http.StatusInternalServerError, "Recommendation failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// loadCloses 심볼 종가 이력 조회, 실패 시 에러 응답까지 처리
func (h *InsightsHandler) loadCloses(w http.ResponseWriter, r *http.Request, symbol string) ([]float64, bool) {
	prices, err := h.priceRepo.GetCloses(r.Context(), symbol, h.config.Engine.HistoryDays)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get price history")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve price history")
		return nil, false
	}
	return prices, true
}

// parseHorizons "1,7,30" 형식 파싱, 양의 정수만 허용
// 빈 값이면 기본 horizon 사용
func parseHorizons(raw string, defaults []int) ([]int, error) {
	if raw == "" {
		return defaults, nil
	}

	parts := strings.Split(raw, ",")
	horizons := make([]int, 0, len(parts))
	for _, part := range parts {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || h <= 0 {
			return nil, errors.New("horizons must be a comma-separated list of positive integers")
		}
		horizons = append(horizons, h)
	}
	return horizons, nil
}
