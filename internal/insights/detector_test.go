package insights

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnomalyDetector_InsufficientData(t *testing.T) {
	detector := NewAnomalyDetector(zerolog.Nop())

	prices := make([]float64, 29)
	for i := range prices {
		prices[i] = 100
	}

	result := detector.Detect("AAPL", prices)
	assert.False(t, result.IsAnomaly)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, "Insufficient data for anomaly detection", result.Reasoning)
}

func TestAnomalyDetector_Spike(t *testing.T) {
	detector := NewAnomalyDetector(zerolog.Nop())

	// 잔잔한 ±0.5% 시계열 끝에 +20% 급등
	prices := make([]float64, 0, 41)
	p := 100.0
	prices = append(prices, p)
	for i := 0; i < 39; i++ {
		if i%2 == 0 {
			p *= 1.005
		} else {
			p *= 0.995
		}
		prices = append(prices, p)
	}
	prices = append(prices, p*1.20)

	result := detector.Detect("GME", prices)
	require.True(t, result.IsAnomaly)
	assert.Greater(t, result.Score, 3.0/5.0)
	assert.Contains(t, result.Reasoning, "spike")
	assert.Contains(t, result.Reasoning, "z-score")
	assert.False(t, result.DetectedAt.IsZero())
}

func TestAnomalyDetector_Drop(t *testing.T) {
	detector := NewAnomalyDetector(zerolog.Nop())

	prices := make([]float64, 0, 41)
	p := 100.0
	prices = append(prices, p)
	for i := 0; i < 39; i++ {
		if i%2 == 0 {
			p *= 1.005
		} else {
			p *= 0.995
		}
		prices = append(prices, p)
	}
	prices = append(prices, p*0.75)

	result := detector.Detect("XYZ", prices)
	require.True(t, result.IsAnomaly)
	assert.Contains(t, result.Reasoning, "drop")
	// 하락도 크기는 부호 없이 표기 (-25% → "25.00% move")
	assert.Contains(t, result.Reasoning, "25.00% move")
	assert.NotContains(t, result.Reasoning, "-25.00")
}

func TestAnomalyDetector_Normal(t *testing.T) {
	detector := NewAnomalyDetector(zerolog.Nop())

	// 마지막 수익률이 분포 안에 있으면 이상치 아님
	prices := make([]float64, 0, 41)
	p := 100.0
	prices = append(prices, p)
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			p *= 1.005
		} else {
			p *= 0.995
		}
		prices = append(prices, p)
	}

	result := detector.Detect("SPY", prices)
	assert.False(t, result.IsAnomaly)
	assert.Equal(t, "No significant anomalies detected in recent price action", result.Reasoning)
	// score = z/5, 정상 범위면 임계값 미만
	assert.Less(t, result.Score, 3.0/5.0)
}
