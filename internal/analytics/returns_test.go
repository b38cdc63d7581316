package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReturns(t *testing.T) {
	values := []float64{100, 102, 101, 105, 103}
	returns := CalculateReturns(values)

	require.Len(t, returns, 4)
	assert.InDelta(t, 0.02, returns[0], 1e-9)
	assert.InDelta(t, -0.009804, returns[1], 1e-6)
	assert.InDelta(t, 0.039604, returns[2], 1e-6)
	assert.InDelta(t, -0.019048, returns[3], 1e-6)
}

func TestCalculateReturns_ShortInput(t *testing.T) {
	// n < 2 이면 빈 시계열 (에러 아님)
	assert.Empty(t, CalculateReturns([]float64{}))
	assert.Empty(t, CalculateReturns([]float64{100}))
}
