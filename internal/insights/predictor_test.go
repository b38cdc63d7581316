package insights

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictor_InsufficientData(t *testing.T) {
	predictor := NewPredictor(zerolog.Nop())

	// 가격 10개 (< 30): 모든 horizon이 마지막 가격, 신뢰도 정확히 0
	prices := []float64{100, 101, 102, 101, 103, 104, 103, 105, 106, 107}
	prediction := predictor.Predict("AAPL", prices, []int{1, 7, 30})

	assert.Equal(t, ModelInsufficientData, prediction.ModelUsed)
	assert.Equal(t, 0.0, prediction.Confidence)
	assert.Equal(t, 107.0, prediction.CurrentPrice)

	require.Len(t, prediction.Predictions, 3)
	for _, key := range []string{"1d", "7d", "30d"} {
		assert.Equal(t, 107.0, prediction.Predictions[key])
	}
}

func TestPredictor_TrendExtrapolation(t *testing.T) {
	predictor := NewPredictor(zerolog.Nop())

	// 일정한 +1% 일간 수익률 40일
	prices := make([]float64, 40)
	p := 100.0
	for i := range prices {
		prices[i] = p
		p *= 1.01
	}
	current := prices[len(prices)-1]

	prediction := predictor.Predict("MSFT", prices, []int{1, 7, 30})

	assert.Equal(t, ModelTrendExtrapolation, prediction.ModelUsed)
	assert.Equal(t, current, prediction.CurrentPrice)

	// 선형 외삽: current × (1 + 0.01×h)
	assert.InDelta(t, current*1.01, prediction.Predictions["1d"], 1e-9)
	assert.InDelta(t, current*1.07, prediction.Predictions["7d"], 1e-9)
	assert.InDelta(t, current*1.30, prediction.Predictions["30d"], 1e-9)

	// 변동성 0 → 신뢰도 1/(1+0) = 1
	assert.InDelta(t, 1.0, prediction.Confidence, 1e-9)
}

func TestPredictor_ConfidenceBounds(t *testing.T) {
	predictor := NewPredictor(zerolog.Nop())

	// 변동성이 커도 신뢰도는 [0,1]
	prices := make([]float64, 50)
	p := 100.0
	for i := range prices {
		prices[i] = p
		if i%2 == 0 {
			p *= 1.10
		} else {
			p *= 0.92
		}
	}

	prediction := predictor.Predict("TSLA", prices, []int{7})
	assert.GreaterOrEqual(t, prediction.Confidence, 0.0)
	assert.LessOrEqual(t, prediction.Confidence, 1.0)
	assert.Equal(t, ModelTrendExtrapolation, prediction.ModelUsed)
}

func TestPredictor_EmptyPrices(t *testing.T) {
	predictor := NewPredictor(zerolog.Nop())

	prediction := predictor.Predict("NEW", nil, []int{1})
	assert.Equal(t, ModelInsufficientData, prediction.ModelUsed)
	assert.Equal(t, 0.0, prediction.CurrentPrice)
	assert.Equal(t, 0.0, prediction.Predictions["1d"])
}
