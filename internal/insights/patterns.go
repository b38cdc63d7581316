package insights

import (
	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Pattern Detector - 이동평균/RSI 기반 기술적 패턴 플래그
// =============================================================================

// DetectPatterns 가격 시계열에서 기술적 패턴 플래그 산출
// 가격이 MinPatternPrices 미만이면 플래그 없는 결과 (에러 아님)
func DetectPatterns(prices []float64, t Thresholds) PatternFlags {
	if len(prices) < t.MinPatternPrices {
		return PatternFlags{}
	}

	returns := analytics.CalculateReturns(prices)

	ma20 := mean(tail(prices, 20))
	ma50 := mean(tail(prices, 50))

	// 독립 계산: 값이 같으면 둘 다 false
	flags := PatternFlags{
		Detected:  true,
		Uptrend:   ma20 > ma50,
		Downtrend: ma20 < ma50,
	}

	// 최근 변동성이 장기 대비 급등했는지
	shortStd := popStd(tail(returns, t.ShortVolWindow))
	longStd := popStd(tail(returns, t.LongVolWindow))
	flags.HighVolatility = shortStd > t.HighVolRatio*longStd

	flags.RSI = rsi(returns, t.RSIPeriod)
	flags.Oversold = flags.RSI < t.RSIOversold
	flags.Overbought = flags.RSI > t.RSIOverbought

	return flags
}

// rsi 최근 period개 상승폭/하락폭 평균 비율로 RSI 계산
// 하락 평균이 0이면 RS=100 센티널 사용
func rsi(returns []float64, period int) float64 {
	var gains, losses []float64
	for _, r := range returns {
		if r > 0 {
			gains = append(gains, r)
		} else if r < 0 {
			losses = append(losses, -r)
		}
	}

	avgGain := mean(tail(gains, period))
	avgLoss := mean(tail(losses, period))

	rs := 100.0
	if avgLoss > 0 {
		rs = avgGain / avgLoss
	}

	return 100 - 100/(1+rs)
}
