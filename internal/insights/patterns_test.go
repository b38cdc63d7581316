package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPatterns_InsufficientData(t *testing.T) {
	thresholds := DefaultThresholds()

	prices := make([]float64, 49)
	for i := range prices {
		prices[i] = 100
	}

	flags := DetectPatterns(prices, thresholds)
	assert.False(t, flags.Detected)
	assert.False(t, flags.Uptrend)
	assert.False(t, flags.Downtrend)
	assert.False(t, flags.HighVolatility)
}

func TestDetectPatterns_Uptrend(t *testing.T) {
	thresholds := DefaultThresholds()

	// 꾸준한 상승: MA20 > MA50, 하락 없음 → RS=100 센티널 → 과매수
	prices := make([]float64, 60)
	p := 100.0
	for i := range prices {
		p *= 1.01
		prices[i] = p
	}

	flags := DetectPatterns(prices, thresholds)
	assert.True(t, flags.Detected)
	assert.True(t, flags.Uptrend)
	assert.False(t, flags.Downtrend)
	assert.True(t, flags.Overbought)
	assert.False(t, flags.Oversold)
	assert.InDelta(t, 100-100.0/101.0, flags.RSI, 1e-9)
}

func TestDetectPatterns_Downtrend(t *testing.T) {
	thresholds := DefaultThresholds()

	// 꾸준한 하락: MA20 < MA50, 상승 없음 → RSI 0 → 과매도
	prices := make([]float64, 60)
	p := 100.0
	for i := range prices {
		p *= 0.99
		prices[i] = p
	}

	flags := DetectPatterns(prices, thresholds)
	assert.True(t, flags.Detected)
	assert.False(t, flags.Uptrend)
	assert.True(t, flags.Downtrend)
	assert.Equal(t, 0.0, flags.RSI)
	assert.True(t, flags.Oversold)
	assert.False(t, flags.Overbought)
}

func TestDetectPatterns_HighVolatility(t *testing.T) {
	thresholds := DefaultThresholds()

	// 잔잔하다가 마지막 20일에 변동 폭발
	prices := make([]float64, 0, 121)
	p := 100.0
	prices = append(prices, p)
	for i := 0; i < 120; i++ {
		var r float64
		if i >= 100 {
			if i%2 == 0 {
				r = 0.05
			} else {
				r = -0.05
			}
		} else {
			if i%2 == 0 {
				r = 0.001
			} else {
				r = -0.001
			}
		}
		p *= 1 + r
		prices = append(prices, p)
	}

	flags := DetectPatterns(prices, thresholds)
	assert.True(t, flags.Detected)
	assert.True(t, flags.HighVolatility)
}
