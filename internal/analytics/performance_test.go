package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueHistory(start time.Time, values []float64) []ValuePoint {
	history := make([]ValuePoint, len(values))
	for i, v := range values {
		history[i] = ValuePoint{Date: start.AddDate(0, 0, i), Value: v}
	}
	return history
}

func TestComputePerformanceMetrics(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	history := valueHistory(start, []float64{100000, 101000, 100500, 103000, 102000})

	m := ComputePerformanceMetrics(history, nil, DefaultRiskFreeRate)

	assert.InDelta(t, 2000.0, m.TotalReturn, 1e-9)
	assert.InDelta(t, 2.0, m.TotalReturnPercent, 1e-9)

	// 일간 수익률 = 마지막 구간 수익률 ×100
	assert.InDelta(t, (102000.0-103000.0)/103000.0*100, m.DailyReturn, 1e-9)

	// 이력이 21일보다 짧으면 월간 = 전체 구간
	assert.InDelta(t, m.TotalReturnPercent, m.MonthlyReturn, 1e-9)

	// 전 구간이 올해 → YTD = 전체 수익률
	assert.InDelta(t, 2.0, m.YTDReturn, 1e-9)

	assert.GreaterOrEqual(t, m.Volatility, 0.0)
	assert.GreaterOrEqual(t, m.MaxDrawdown, 0.0)
	// 벤치마크 없으면 베타 기본값
	assert.Equal(t, 1.0, m.Beta)
}

func TestComputePerformanceMetrics_YTDBoundary(t *testing.T) {
	// 작년 12월 말 ~ 올해 초를 걸치는 이력
	start := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
	history := valueHistory(start, []float64{100000, 100500, 99000, 101000, 102000, 103000})

	m := ComputePerformanceMetrics(history, nil, DefaultRiskFreeRate)

	// 올해 첫 포인트는 1/1 (인덱스 3, 값 101000) → YTD = (103000-101000)/101000
	require.InDelta(t, (103000.0-101000.0)/101000.0*100, m.YTDReturn, 1e-9)
}

func TestComputePerformanceMetrics_ShortHistory(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	m := ComputePerformanceMetrics(valueHistory(start, []float64{100000}), nil, DefaultRiskFreeRate)
	assert.Equal(t, 0.0, m.TotalReturn)
	assert.Equal(t, 0.0, m.Volatility)
	assert.Equal(t, 1.0, m.Beta)
}

func TestSectorAllocations(t *testing.T) {
	positions := []Position{
		{Symbol: "AAPL", MarketValue: 30000, Sector: "Technology"},
		{Symbol: "MSFT", MarketValue: 30000, Sector: "Technology"},
		{Symbol: "JNJ", MarketValue: 25000, Sector: "Healthcare"},
		{Symbol: "MYST", MarketValue: 15000},
	}

	allocations := SectorAllocations(positions)
	require.Len(t, allocations, 3)

	// 비중 내림차순
	assert.Equal(t, "Technology", allocations[0].Sector)
	assert.InDelta(t, 60.0, allocations[0].Percentage, 1e-9)
	assert.Equal(t, "Healthcare", allocations[1].Sector)
	assert.Equal(t, "Unknown", allocations[2].Sector)

	var total float64
	for _, a := range allocations {
		total += a.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-6)
}

func TestAssetAllocations(t *testing.T) {
	positions := []Position{
		{Symbol: "AAPL", MarketValue: 60000, AssetType: AssetStock},
		{Symbol: "SPY", MarketValue: 30000, AssetType: AssetETF},
		{Symbol: "CASH", MarketValue: 10000, AssetType: AssetCash},
	}

	allocations := AssetAllocations(positions)
	require.Len(t, allocations, 3)
	assert.Equal(t, AssetStock, allocations[0].AssetType)
	assert.InDelta(t, 60.0, allocations[0].Percentage, 1e-9)
}

func TestAllocations_Empty(t *testing.T) {
	assert.Empty(t, SectorAllocations(nil))
	assert.Empty(t, AssetAllocations(nil))
}
