package insights

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Recommendation Engine - 보유 종목 규칙 기반 진단
// =============================================================================

// Recommender 추천 엔진
type Recommender struct {
	thresholds Thresholds
	log        zerolog.Logger
}

// NewRecommender 새 추천 엔진 생성
func NewRecommender(log zerolog.Logger) *Recommender {
	return &Recommender{
		thresholds: DefaultThresholds(),
		log:        log.With().Str("component", "insights.recommender").Logger(),
	}
}

// NewRecommenderWithThresholds 커스텀 임계값으로 추천 엔진 생성
func NewRecommenderWithThresholds(thresholds Thresholds, log zerolog.Logger) *Recommender {
	return &Recommender{
		thresholds: thresholds,
		log:        log.With().Str("component", "insights.recommender").Logger(),
	}
}

// Recommend 포지션 목록에서 추천 목록 생성
// 포지션 순회 순서대로 종목별 추천을 내고, 분산투자 체크를 마지막에 붙임
// 한 종목이 여러 추천을 동시에 받을 수 있음 (상호 배타 아님)
func (r *Recommender) Recommend(positions []analytics.Position) ([]PortfolioRecommendation, error) {
	if len(positions) == 0 {
		return nil, analytics.ErrNoPositions
	}

	var totalValue float64
	for _, p := range positions {
		totalValue += p.MarketValue
	}

	recommendations := make([]PortfolioRecommendation, 0)
	sectors := make(map[string]struct{})

	for _, p := range positions {
		// 빈 섹터도 하나의 버킷으로 센다 (미분류도 구별되는 그룹)
		sectors[p.Sector] = struct{}{}

		weight := p.MarketValue / totalValue

		// 집중 포지션 → 리밸런싱
		if weight > r.thresholds.MaxPositionWeight {
			impact := -weight * 0.1
			recommendations = append(recommendations, PortfolioRecommendation{
				Symbol:     p.Symbol,
				Type:       RecommendRebalance,
				Confidence: 0.85,
				Reasoning: fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% concentration threshold",
					p.Symbol, weight*100, r.thresholds.MaxPositionWeight*100),
				ExpectedImpact: &impact,
			})
		}

		// 큰 손실 → 재검토
		if p.GainLossPercent < r.thresholds.ReviewLossPercent {
			recommendations = append(recommendations, PortfolioRecommendation{
				Symbol:     p.Symbol,
				Type:       RecommendReview,
				Confidence: 0.70,
				Reasoning: fmt.Sprintf("%s is down %.1f%%, review whether the original thesis still holds",
					p.Symbol, -p.GainLossPercent),
			})
		}

		// 큰 이익 + 높은 비중 → 차익 실현 검토
		if p.GainLossPercent > r.thresholds.TakeProfitPercent && weight > r.thresholds.TakeProfitWeight {
			impact := p.GainLoss * 0.3
			recommendations = append(recommendations, PortfolioRecommendation{
				Symbol:     p.Symbol,
				Type:       RecommendConsiderSell,
				Confidence: 0.65,
				Reasoning: fmt.Sprintf("%s has gained %.1f%% and is %.1f%% of the portfolio, consider taking profits",
					p.Symbol, p.GainLossPercent, weight*100),
				ExpectedImpact: &impact,
			})
		}
	}

	// 포트폴리오 레벨: 섹터 분산 체크 (마지막에 추가)
	if len(sectors) < r.thresholds.MinDistinctSectors {
		recommendations = append(recommendations, PortfolioRecommendation{
			Type:       RecommendDiversify,
			Confidence: 0.80,
			Reasoning: fmt.Sprintf("Portfolio spans only %d sectors, consider diversifying across at least %d",
				len(sectors), r.thresholds.MinDistinctSectors),
		})
	}

	r.log.Debug().
		Int("positions", len(positions)).
		Int("recommendations", len(recommendations)).
		Int("sectors", len(sectors)).
		Msg("recommendations generated")

	return recommendations, nil
}
