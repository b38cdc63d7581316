package insights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRisk_InsufficientData(t *testing.T) {
	thresholds := DefaultThresholds()

	// 30개 미만이면 정확히 (50.0, "medium")
	prices := make([]float64, 29)
	for i := range prices {
		prices[i] = 100
	}

	score := ScoreRisk(prices, thresholds)
	assert.Equal(t, 50.0, score.Score)
	assert.Equal(t, RiskMedium, score.Level)
}

func TestScoreRisk_FlatPrices(t *testing.T) {
	thresholds := DefaultThresholds()

	// 변동도 낙폭도 없으면 점수 0 → low
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 100
	}

	score := ScoreRisk(prices, thresholds)
	assert.Equal(t, 0.0, score.Score)
	assert.Equal(t, RiskLow, score.Level)
}

func TestScoreRisk_VolatileSeries(t *testing.T) {
	thresholds := DefaultThresholds()

	// 큰 낙폭 + 높은 변동성 → high, 점수는 100 클립
	prices := make([]float64, 0, 40)
	p := 100.0
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			p *= 0.90
		} else {
			p *= 1.05
		}
		prices = append(prices, p)
	}

	score := ScoreRisk(prices, thresholds)
	assert.Equal(t, RiskHigh, score.Level)
	assert.GreaterOrEqual(t, score.Score, 0.0)
	assert.LessOrEqual(t, score.Score, 100.0)
	assert.False(t, math.IsNaN(score.Score))
}
