package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPositions() []Position {
	return []Position{
		{Symbol: "AAPL", MarketValue: 30000, GainLossPercent: 15.0, Sector: "Technology"},
		{Symbol: "MSFT", MarketValue: 25000, GainLossPercent: 8.0, Sector: "Technology"},
		{Symbol: "JNJ", MarketValue: 20000, GainLossPercent: -3.0, Sector: "Healthcare"},
		{Symbol: "XOM", MarketValue: 25000, GainLossPercent: 5.0, Sector: "Energy"},
	}
}

func TestOptimizePortfolio_WeightsSumToOne(t *testing.T) {
	for _, rt := range []float64{0.0, 0.2, 0.5, 0.8, 1.0} {
		resp, err := OptimizePortfolio(testPositions(), rt, nil)
		require.NoError(t, err)

		var sum float64
		for symbol, w := range resp.RecommendedWeights {
			assert.GreaterOrEqual(t, w, 0.0, "weight for %s at rt=%.1f", symbol, rt)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "rt=%.1f", rt)
	}
}

func TestOptimizePortfolio_EmptyPositions(t *testing.T) {
	_, err := OptimizePortfolio(nil, 0.5, nil)
	assert.ErrorIs(t, err, ErrNoPositions)
}

func TestOptimizePortfolio_AllLosers_EqualWeight(t *testing.T) {
	// 전 종목 손실이면 점수 전부 0 → 균등 배분
	positions := []Position{
		{Symbol: "A", MarketValue: 50000, GainLossPercent: -5.0},
		{Symbol: "B", MarketValue: 30000, GainLossPercent: -12.0},
		{Symbol: "C", MarketValue: 20000, GainLossPercent: -1.0},
	}

	resp, err := OptimizePortfolio(positions, 0.7, nil)
	require.NoError(t, err)

	for _, w := range resp.RecommendedWeights {
		assert.InDelta(t, 1.0/3.0, w, 1e-9)
	}
}

func TestOptimizePortfolio_HighToleranceFollowsScores(t *testing.T) {
	// risk_tolerance ≥ 0.5면 점수 비례 배분 그대로
	positions := []Position{
		{Symbol: "WIN", MarketValue: 50000, GainLossPercent: 30.0},
		{Symbol: "FLAT", MarketValue: 50000, GainLossPercent: 0.0},
	}

	resp, err := OptimizePortfolio(positions, 0.9, nil)
	require.NoError(t, err)

	// WIN만 양의 점수 → 전량 WIN
	assert.InDelta(t, 1.0, resp.RecommendedWeights["WIN"], 1e-9)
	assert.InDelta(t, 0.0, resp.RecommendedWeights["FLAT"], 1e-9)
}

func TestOptimizePortfolio_LowToleranceBlendsTowardEqual(t *testing.T) {
	positions := []Position{
		{Symbol: "WIN", MarketValue: 50000, GainLossPercent: 30.0},
		{Symbol: "FLAT", MarketValue: 50000, GainLossPercent: 0.0},
	}

	// rt=0.25: base×0.5 + equal×0.5 → WIN = 1.0×0.5 + 0.5×0.5 = 0.75
	resp, err := OptimizePortfolio(positions, 0.25, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, resp.RecommendedWeights["WIN"], 1e-9)
	assert.InDelta(t, 0.25, resp.RecommendedWeights["FLAT"], 1e-9)
}

func TestOptimizePortfolio_Response(t *testing.T) {
	resp, err := OptimizePortfolio(testPositions(), 0.6, nil)
	require.NoError(t, err)

	// 현재 배분은 평가액 비중 그대로
	assert.InDelta(t, 0.30, resp.CurrentAllocation["AAPL"], 1e-9)
	assert.InDelta(t, 0.25, resp.CurrentAllocation["MSFT"], 1e-9)

	// 가정 변동성 18% ×100
	assert.InDelta(t, 18.0, resp.ExpectedVolatility, 1e-9)

	// sharpe = expected_return / expected_volatility (동일 스케일 비율)
	if resp.ExpectedVolatility > 0 {
		assert.InDelta(t, resp.ExpectedReturn/resp.ExpectedVolatility, resp.SharpeRatio, 1e-9)
	}
}
