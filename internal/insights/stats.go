package insights

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// mean 평균, 빈 입력은 0
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// popStd 모표준편차 (N 분모)
func popStd(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := stat.Mean(values, nil)
	return math.Sqrt(stat.MomentAbout(2, values, m, nil))
}

// tail 최근 n개 요소 (부족하면 전체)
func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
