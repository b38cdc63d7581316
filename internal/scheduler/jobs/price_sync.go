package jobs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
)

// =============================================================================
// Price Sync Job - 보유 종목 + 벤치마크 시세 동기화
// =============================================================================

// PriceSyncJob 일별 종가 수집 및 포지션 현재가 갱신
type PriceSyncJob struct {
	portfolioRepo   *portfolio.Repository
	priceRepo       *marketdata.PriceRepository
	client          *marketdata.Client
	benchmarkSymbol string
	historyDays     int
	log             zerolog.Logger
}

// NewPriceSyncJob creates a new price sync job
func NewPriceSyncJob(
	portfolioRepo *portfolio.Repository,
	priceRepo *marketdata.PriceRepository,
	client *marketdata.Client,
	benchmarkSymbol string,
	historyDays int,
	log zerolog.Logger,
) *PriceSyncJob {
	return &PriceSyncJob{
		portfolioRepo:   portfolioRepo,
		priceRepo:       priceRepo,
		client:          client,
		benchmarkSymbol: benchmarkSymbol,
		historyDays:     historyDays,
		log:             log.With().Str("job", "price_sync").Logger(),
	}
}

// Name returns the job name
func (j *PriceSyncJob) Name() string {
	return "price_sync"
}

// Schedule 평일 장 마감 후 17:30
func (j *PriceSyncJob) Schedule() string {
	return "0 30 17 * * 1-5"
}

// Run 보유 종목과 벤치마크의 종가를 수집하고 포지션 현재가를 갱신
func (j *PriceSyncJob) Run(ctx context.Context) error {
	positions, err := j.portfolioRepo.GetPositions(ctx)
	if err != nil {
		return fmt.Errorf("get positions failed: %w", err)
	}

	symbols := make([]string, 0, len(positions)+1)
	needsProfile := make(map[string]bool)
	for _, p := range positions {
		symbols = append(symbols, p.Symbol)
		if p.Sector == "" {
			needsProfile[p.Symbol] = true
		}
	}
	symbols = append(symbols, j.benchmarkSymbol)

	var synced, failed int
	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		closes, err := j.client.FetchDailyCloses(ctx, symbol, j.historyDays)
		if err != nil {
			j.log.Error().Err(err).Str("symbol", symbol).Msg("fetch closes failed")
			failed++
			continue
		}

		if err := j.priceRepo.SaveBatch(ctx, closes); err != nil {
			j.log.Error().Err(err).Str("symbol", symbol).Msg("save closes failed")
			failed++
			continue
		}

		// 포지션 현재가 갱신 (벤치마크는 포지션이 아님)
		if symbol != j.benchmarkSymbol && len(closes) > 0 {
			latest := closes[len(closes)-1]
			if err := j.portfolioRepo.UpdatePrice(ctx, symbol, latest.Close); err != nil {
				j.log.Error().Err(err).Str("symbol", symbol).Msg("update position price failed")
				failed++
				continue
			}
		}

		// 섹터 미기재 포지션은 프로필 페이지에서 보강 (실패해도 시세 동기화는 성공)
		if needsProfile[symbol] {
			j.enrichSector(ctx, symbol)
		}

		synced++
	}

	j.log.Info().
		Int("synced", synced).
		Int("failed", failed).
		Msg("price sync completed")

	if failed > 0 && synced == 0 {
		return fmt.Errorf("price sync failed for all %d symbols", failed)
	}
	return nil
}

// enrichSector 프로필 스크랩으로 빈 섹터 채우기
func (j *PriceSyncJob) enrichSector(ctx context.Context, symbol string) {
	profile, err := j.client.FetchProfile(ctx, symbol)
	if err != nil {
		j.log.Warn().Err(err).Str("symbol", symbol).Msg("fetch profile failed")
		return
	}
	if profile.Sector == "" {
		return
	}
	if err := j.portfolioRepo.UpdateSector(ctx, symbol, profile.Sector); err != nil {
		j.log.Warn().Err(err).Str("symbol", symbol).Msg("update sector failed")
		return
	}
	j.log.Info().Str("symbol", symbol).Str("sector", profile.Sector).Msg("sector enriched from profile")
}
