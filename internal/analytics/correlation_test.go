package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationMatrix(t *testing.T) {
	prices := map[string][]float64{
		"AAPL": {100, 102, 101, 105, 103},
		"MSFT": {200, 204, 202, 210, 206}, // AAPL의 정확히 2배 → 완전 상관
		"TLT":  {100, 99, 101, 98, 100},
	}

	matrix := CorrelationMatrix(prices)
	require.Len(t, matrix, 3)

	// 대각선 = 1.0
	for _, symbol := range []string{"AAPL", "MSFT", "TLT"} {
		assert.Equal(t, 1.0, matrix[symbol][symbol])
	}

	// 대칭
	assert.InDelta(t, matrix["AAPL"]["TLT"], matrix["TLT"]["AAPL"], 1e-12)
	assert.InDelta(t, matrix["AAPL"]["MSFT"], matrix["MSFT"]["AAPL"], 1e-12)

	// 동일 수익률 시계열 → 상관 1.0
	assert.InDelta(t, 1.0, matrix["AAPL"]["MSFT"], 1e-9)

	// 상관계수 범위
	for _, row := range matrix {
		for _, r := range row {
			assert.GreaterOrEqual(t, r, -1.0-1e-9)
			assert.LessOrEqual(t, r, 1.0+1e-9)
		}
	}
}

func TestCorrelationMatrix_InsufficientData(t *testing.T) {
	prices := map[string][]float64{
		"AAPL": {100, 102, 101},
		"NEW":  {50}, // 가격 2개 미만 → 제외
	}

	matrix := CorrelationMatrix(prices)
	require.Len(t, matrix, 1)
	assert.NotContains(t, matrix, "NEW")
	assert.Equal(t, 1.0, matrix["AAPL"]["AAPL"])
}

func TestCorrelationMatrix_Empty(t *testing.T) {
	assert.Empty(t, CorrelationMatrix(map[string][]float64{}))
}

func TestCorrelationMatrix_Degenerate(t *testing.T) {
	// 분산 0인 시계열은 상관 미정의 → 0.0 처리
	prices := map[string][]float64{
		"FLAT": {100, 100, 100, 100},
		"AAPL": {100, 102, 101, 105},
	}

	matrix := CorrelationMatrix(prices)
	assert.Equal(t, 0.0, matrix["FLAT"]["AAPL"])
	assert.Equal(t, 1.0, matrix["FLAT"]["FLAT"])
}
