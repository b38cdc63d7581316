package insights

import "math"

// =============================================================================
// Volatility Forecast - 지수가중 전방 변동성 추정
// =============================================================================

// ForecastVolatility 수익률 시계열로 전방 변동성 추정 (연율화 %)
// 최근 수익률에 지수적으로 큰 가중치를 두고 제곱 수익률의
// 가중 평균(평균 0 가정 분산)을 연율화
// 수익률이 MinForecastReturns 미만이면 DefaultVolatility 반환
func ForecastVolatility(returns []float64, t Thresholds) float64 {
	if len(returns) < t.MinForecastReturns {
		return t.DefaultVolatility
	}

	// exp(linspace(-1, 0, n)): 가장 오래된 수익률 가중 최소, 최신 최대
	n := len(returns)
	weights := make([]float64, n)
	var weightSum float64
	for i := range weights {
		x := -1.0 + float64(i)/float64(n-1)
		weights[i] = math.Exp(x)
		weightSum += weights[i]
	}

	// 가중 분산 (합 1로 정규화)
	var weightedVar float64
	for i, r := range returns {
		weightedVar += (weights[i] / weightSum) * r * r
	}

	// 연율화 후 %
	return math.Sqrt(weightedVar*252) * 100
}
