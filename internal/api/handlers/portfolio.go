package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/pkg/logger"
)

// PortfolioHandler handles portfolio API endpoints
// ⭐ SSOT: 포트폴리오 API 핸들러는 이 구조체에서만
type PortfolioHandler struct {
	service *portfolio.Service
	client  *marketdata.Client
	logger  *logger.Logger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(service *portfolio.Service, client *marketdata.Client, log *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		client:  client,
		logger:  log,
	}
}

// GetPositions returns all portfolio positions
// GET /api/portfolio/positions
func (h *PortfolioHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	positions, err := h.service.Positions(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get positions")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve positions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"positions": positions,
		"count":     len(positions),
	})
}

// GetSummary returns the aggregated portfolio summary
// GET /api/portfolio/summary
func (h *PortfolioHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.GetSummary(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get portfolio summary")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve portfolio summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetQuote returns the live quote for a symbol (Redis 캐시 경유)
// GET /api/portfolio/quote/{symbol}
func (h *PortfolioHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	quote, err := h.client.FetchQuote(r.Context(), symbol)
	if err != nil {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Failed to fetch quote")
		respondError(w, http.StatusBadGateway, "Failed to fetch quote")
		return
	}

	respondJSON(w, http.StatusOK, quote)
}
