package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// Risk Metrics - 순수 계산 (상태 없음, 동시 호출 안전)
// =============================================================================

const (
	// TradingDays 연간 거래일수 (일별 샘플링 가정, 연율화 상수)
	TradingDays = 252

	// DefaultRiskFreeRate 연간 무위험 수익률 기본값
	DefaultRiskFreeRate = 0.04
)

// Volatility 수익률 표준편차 (모표준편차)
// annualize=true면 sqrt(252) 곱, 결과는 ×100
// 빈 입력 → 0.0
func Volatility(returns []float64, annualize bool) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	vol := popStd(returns)
	if annualize {
		vol *= math.Sqrt(TradingDays)
	}

	return vol * 100
}

// SharpeRatio 위험조정수익률
// (mean×252 − riskFreeRate) / (std×sqrt(252))
// 연율화 변동성 0 또는 빈 입력 → 0.0
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	annualVol := popStd(returns) * math.Sqrt(TradingDays)
	if annualVol == 0 {
		return 0.0
	}

	annualReturn := stat.Mean(returns, nil) * TradingDays
	return (annualReturn - riskFreeRate) / annualVol
}

// MaxDrawdown 최대 낙폭
// 러닝 피크 대비 하락률의 최솟값을 양수 ×100으로 반환
// 빈 입력 → 0.0
func MaxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	peak := values[0]
	minDD := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		dd := (v - peak) / peak
		if dd < minDD {
			minDD = dd
		}
	}

	return math.Abs(minDD) * 100
}

// VaR Historical VaR 계산
// confidence: 신뢰수준 (예: 0.95, 0.99)
// abs(percentile(returns, (1-c)×100))×100
// 빈 입력 → 0.0
func VaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	threshold := percentile(sorted, (1-confidence)*100)
	return math.Abs(threshold) * 100
}

// CVaR Conditional VaR (Expected Shortfall)
// VaR 백분위수 임계값 이하 수익률의 평균, abs ×100
// tail이 비면 0.0
func CVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	threshold := percentile(sorted, (1-confidence)*100)

	var sum float64
	var count int
	for _, r := range sorted {
		if r <= threshold {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0.0
	}

	return math.Abs(sum/float64(count)) * 100
}

// Beta 시장 대비 민감도
// cov(asset, market) / var(market), 짧은 쪽 길이로 정렬
// 빈 입력 또는 시장 분산 0 → 1.0
func Beta(assetReturns, marketReturns []float64) float64 {
	if len(assetReturns) == 0 || len(marketReturns) == 0 {
		return 1.0
	}

	// 겹치는 prefix만 사용 (짧은 쪽 길이)
	n := len(assetReturns)
	if len(marketReturns) < n {
		n = len(marketReturns)
	}
	asset := assetReturns[:n]
	market := marketReturns[:n]

	marketVar := popVariance(market)
	if marketVar == 0 {
		return 1.0
	}

	if n < 2 {
		return 1.0
	}

	cov := stat.Covariance(asset, market, nil)
	return cov / marketVar
}

// AnalyzeRisk 가치 시계열 + 시장 수익률로 전체 리스크 분석 조립
func AnalyzeRisk(values []float64, marketReturns []float64, riskFreeRate float64) RiskAnalysis {
	returns := CalculateReturns(values)

	return RiskAnalysis{
		Volatility:  Volatility(returns, true),
		SharpeRatio: SharpeRatio(returns, riskFreeRate),
		MaxDrawdown: MaxDrawdown(values),
		VaR95:       VaR(returns, 0.95),
		VaR99:       VaR(returns, 0.99),
		CVaR95:      CVaR(returns, 0.95),
		Beta:        Beta(returns, marketReturns),
	}
}

// =============================================================================
// 통계 유틸리티
// =============================================================================

// popStd 모표준편차 (N 분모)
func popStd(values []float64) float64 {
	return math.Sqrt(popVariance(values))
}

// popVariance 모분산 (N 분모)
func popVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := stat.Mean(values, nil)
	return stat.MomentAbout(2, values, mean, nil)
}

// percentile 백분위수 계산 (선형 보간)
// sorted: 오름차순 정렬된 값
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
