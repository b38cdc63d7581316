package insights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForecastVolatility_InsufficientData(t *testing.T) {
	thresholds := DefaultThresholds()

	// 30개 미만이면 기본값 20.0
	returns := make([]float64, 29)
	assert.Equal(t, 20.0, ForecastVolatility(returns, thresholds))
	assert.Equal(t, 20.0, ForecastVolatility(nil, thresholds))
}

func TestForecastVolatility_ConstantReturns(t *testing.T) {
	thresholds := DefaultThresholds()

	// 동일 수익률이면 가중치와 무관: sqrt(r²×252)×100
	returns := make([]float64, 30)
	for i := range returns {
		returns[i] = 0.01
	}

	expected := math.Sqrt(0.01*0.01*252) * 100
	assert.InDelta(t, expected, ForecastVolatility(returns, thresholds), 1e-9)
}

func TestForecastVolatility_WeightsRecent(t *testing.T) {
	thresholds := DefaultThresholds()

	// 같은 수익률 집합이라도 변동이 최근에 몰려 있으면 예측치가 높아야 함
	calmThenWild := make([]float64, 60)
	wildThenCalm := make([]float64, 60)
	for i := 0; i < 60; i++ {
		if i >= 50 {
			calmThenWild[i] = 0.05
			wildThenCalm[60-1-i] = 0.05
		} else {
			calmThenWild[i] = 0.001
			wildThenCalm[60-1-i] = 0.001
		}
	}

	assert.Greater(t,
		ForecastVolatility(calmThenWild, thresholds),
		ForecastVolatility(wildThenCalm, thresholds))
}
