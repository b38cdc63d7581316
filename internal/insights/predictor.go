package insights

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Price Predictor - 추세 외삽 단기 가격 예측
// =============================================================================

// Predictor 가격 예측기
type Predictor struct {
	thresholds Thresholds
	log        zerolog.Logger
}

// NewPredictor 새 예측기 생성
func NewPredictor(log zerolog.Logger) *Predictor {
	return &Predictor{
		thresholds: DefaultThresholds(),
		log:        log.With().Str("component", "insights.predictor").Logger(),
	}
}

// NewPredictorWithThresholds 커스텀 임계값으로 예측기 생성
func NewPredictorWithThresholds(thresholds Thresholds, log zerolog.Logger) *Predictor {
	return &Predictor{
		thresholds: thresholds,
		log:        log.With().Str("component", "insights.predictor").Logger(),
	}
}

// Predict 과거 가격으로 horizon별 예측 가격 생성
// prices: 과거→최신, horizons: 양의 정수 일수 (검증은 호출자 책임)
// 가격이 30개 미만이면 모든 horizon에 마지막 가격, 신뢰도 0,
// 모델 라벨 "insufficient_data"
func (p *Predictor) Predict(symbol string, prices []float64, horizons []int) PricePrediction {
	currentPrice := 0.0
	if len(prices) > 0 {
		currentPrice = prices[len(prices)-1]
	}

	prediction := PricePrediction{
		Symbol:       symbol,
		CurrentPrice: currentPrice,
		Predictions:  make(map[string]float64, len(horizons)),
		GeneratedAt:  time.Now(),
	}

	if len(prices) < p.thresholds.MinPredictionPrices {
		for _, h := range horizons {
			prediction.Predictions[horizonKey(h)] = currentPrice
		}
		prediction.Confidence = 0.0
		prediction.ModelUsed = ModelInsufficientData

		p.log.Debug().
			Str("symbol", symbol).
			Int("prices", len(prices)).
			Msg("insufficient history for prediction")

		return prediction
	}

	returns := analytics.CalculateReturns(prices)
	window := tail(returns, p.thresholds.PredictionWindow)

	avgReturn := mean(window)
	volatility := popStd(window)

	// 평균 일간 수익률의 선형 외삽 (복리 아님)
	for _, h := range horizons {
		prediction.Predictions[horizonKey(h)] = currentPrice * (1 + avgReturn*float64(h))
	}

	confidence := 1 / (1 + volatility*10)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	prediction.Confidence = confidence
	prediction.ModelUsed = ModelTrendExtrapolation

	p.log.Debug().
		Str("symbol", symbol).
		Float64("avg_return", avgReturn).
		Float64("volatility", volatility).
		Float64("confidence", confidence).
		Msg("prediction generated")

	return prediction
}

// horizonKey horizon 일수를 "{h}d" 키로 변환
func horizonKey(h int) string {
	return fmt.Sprintf("%dd", h)
}
