package analytics

// =============================================================================
// Return Series Calculation
// =============================================================================

// CalculateReturns 가치 시계열을 단순 기간수익률 시계열로 변환
// values: 시간순 정렬 (과거→최신), 길이 n
// 반환: 길이 n-1, return[i] = (v[i+1]-v[i])/v[i]
// n < 2이면 빈 시계열 반환 (에러 아님)
func CalculateReturns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(values)-1)
	for i := 0; i < len(values)-1; i++ {
		returns = append(returns, (values[i+1]-values[i])/values[i])
	}

	return returns
}
