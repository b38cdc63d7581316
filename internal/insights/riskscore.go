package insights

import (
	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Risk Scorer - 변동성/낙폭 합성 점수
// =============================================================================

// ScoreRisk 가격 시계열로 0~100 리스크 점수와 레벨 산출
// 가격이 MinRiskScorePrices 미만이면 중립 기본값 (50, "medium")
func ScoreRisk(prices []float64, t Thresholds) RiskScore {
	if len(prices) < t.MinRiskScorePrices {
		return RiskScore{Score: 50.0, Level: RiskMedium}
	}

	returns := analytics.CalculateReturns(prices)
	volatility := analytics.Volatility(returns, true)
	maxDD := analytics.MaxDrawdown(prices)

	score := volatility*t.VolatilityWeight + maxDD*t.DrawdownWeight
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := RiskHigh
	switch {
	case score < t.LowRiskCutoff:
		level = RiskLow
	case score < t.MediumRiskCutoff:
		level = RiskMedium
	}

	return RiskScore{Score: score, Level: level}
}
