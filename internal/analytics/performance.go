package analytics

import "time"

// =============================================================================
// Performance Metrics
// =============================================================================

// ComputePerformanceMetrics 가치 이력으로 성과 지표 조립
// history: 일별 포트폴리오 가치 (과거→최신)
// marketReturns: 벤치마크 수익률 (베타 계산용, 없으면 nil)
// 이력이 2개 미만이면 제로값 지표 반환
func ComputePerformanceMetrics(history []ValuePoint, marketReturns []float64, riskFreeRate float64) PerformanceMetrics {
	if len(history) < 2 {
		return PerformanceMetrics{Beta: 1.0}
	}

	values := make([]float64, len(history))
	for i, p := range history {
		values[i] = p.Value
	}
	returns := CalculateReturns(values)

	first := values[0]
	last := values[len(values)-1]

	m := PerformanceMetrics{
		TotalReturn:        last - first,
		TotalReturnPercent: periodReturn(first, last),
		DailyReturn:        returns[len(returns)-1] * 100,
		MonthlyReturn:      trailingReturn(values, 21),
		YTDReturn:          ytdReturn(history),
		Volatility:         Volatility(returns, true),
		SharpeRatio:        SharpeRatio(returns, riskFreeRate),
		MaxDrawdown:        MaxDrawdown(values),
		Beta:               Beta(returns, marketReturns),
	}

	return m
}

// periodReturn 구간 수익률 ×100
func periodReturn(start, end float64) float64 {
	if start == 0 {
		return 0
	}
	return (end - start) / start * 100
}

// trailingReturn 최근 window개 포인트 구간 수익률 ×100
// 이력이 window보다 짧으면 전체 구간 사용
func trailingReturn(values []float64, window int) float64 {
	if len(values) < 2 {
		return 0
	}
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	return periodReturn(values[start], values[len(values)-1])
}

// ytdReturn 올해 첫 스냅샷 대비 수익률 ×100
func ytdReturn(history []ValuePoint) float64 {
	if len(history) < 2 {
		return 0
	}

	year := history[len(history)-1].Date.Year()
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range history {
		if !p.Date.Before(yearStart) {
			return periodReturn(p.Value, history[len(history)-1].Value)
		}
	}

	return 0
}
