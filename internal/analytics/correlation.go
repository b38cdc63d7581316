package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Correlation Matrix
// =============================================================================

// CorrelationMatrix 심볼별 가격 시계열로 피어슨 상관계수 행렬 계산
// prices: 심볼 → 가격 시계열 (과거→최신)
// 가격이 2개 미만인 심볼은 행렬에서 제외 (0으로 채우지 않음)
// 대각선 = 1.0, 대칭 행렬, 빈 입력 → 빈 행렬
func CorrelationMatrix(prices map[string][]float64) map[string]map[string]float64 {
	// 수익률 시계열로 변환, 데이터 부족 심볼 제외
	returnSeries := make(map[string][]float64)
	symbols := make([]string, 0, len(prices))
	for symbol, series := range prices {
		if len(series) < 2 {
			continue
		}
		returnSeries[symbol] = CalculateReturns(series)
		symbols = append(symbols, symbol)
	}

	matrix := make(map[string]map[string]float64, len(symbols))
	for _, a := range symbols {
		matrix[a] = make(map[string]float64, len(symbols))
		for _, b := range symbols {
			if a == b {
				matrix[a][b] = 1.0
				continue
			}
			matrix[a][b] = pearson(returnSeries[a], returnSeries[b])
		}
	}

	return matrix
}

// pearson 겹치는 prefix 구간의 피어슨 상관계수
// 분산 0 등 퇴화 입력은 0.0으로 처리
func pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n < 2 {
		return 0.0
	}

	r := stat.Correlation(x[:n], y[:n], nil)
	if math.IsNaN(r) {
		return 0.0
	}
	return r
}
