package portfolio

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Portfolio Service - 포지션 조회/집계/스냅샷
// =============================================================================

// Summary 포트폴리오 요약
type Summary struct {
	TotalValue           float64                      `json:"total_value"`
	TotalCost            float64                      `json:"total_cost"`
	TotalGainLoss        float64                      `json:"total_gain_loss"`
	TotalGainLossPercent float64                      `json:"total_gain_loss_percent"`
	PositionCount        int                          `json:"position_count"`
	Positions            []analytics.Position         `json:"positions"`
	SectorAllocations    []analytics.SectorAllocation `json:"sector_allocations"`
	AssetAllocations     []analytics.AssetAllocation  `json:"asset_allocations"`
}

// Service 포트폴리오 서비스
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new portfolio service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "portfolio.service").Logger(),
	}
}

// Positions 전체 포지션 조회
func (s *Service) Positions(ctx context.Context) ([]analytics.Position, error) {
	return s.repo.GetPositions(ctx)
}

// ValueHistory 최근 days일 가치 이력 조회
func (s *Service) ValueHistory(ctx context.Context, days int) ([]analytics.ValuePoint, error) {
	return s.repo.GetValueHistory(ctx, days)
}

// GetSummary 포지션 집계로 포트폴리오 요약 생성
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	positions, err := s.repo.GetPositions(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		PositionCount:     len(positions),
		Positions:         positions,
		SectorAllocations: analytics.SectorAllocations(positions),
		AssetAllocations:  analytics.AssetAllocations(positions),
	}

	for _, p := range positions {
		summary.TotalValue += p.MarketValue
		summary.TotalCost += p.Quantity * p.CostBasis
	}
	summary.TotalGainLoss = summary.TotalValue - summary.TotalCost
	if summary.TotalCost > 0 {
		summary.TotalGainLossPercent = summary.TotalGainLoss / summary.TotalCost * 100
	}

	return summary, nil
}

// RecordSnapshot 현재 총 평가액을 오늘 날짜 스냅샷으로 기록
func (s *Service) RecordSnapshot(ctx context.Context) error {
	positions, err := s.repo.GetPositions(ctx)
	if err != nil {
		return err
	}

	var totalValue float64
	for _, p := range positions {
		totalValue += p.MarketValue
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.repo.SaveSnapshot(ctx, today, totalValue); err != nil {
		return err
	}

	s.log.Info().
		Float64("total_value", totalValue).
		Int("positions", len(positions)).
		Msg("portfolio snapshot recorded")

	return nil
}
