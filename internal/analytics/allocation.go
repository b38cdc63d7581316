package analytics

import "sort"

// =============================================================================
// Allocation Breakdown
// =============================================================================

// SectorAllocations 섹터별 평가액/비중 집계
// 비중 내림차순 정렬, 섹터 미지정 포지션은 "Unknown"으로 묶음
func SectorAllocations(positions []Position) []SectorAllocation {
	totals := make(map[string]float64)
	var totalValue float64
	for _, p := range positions {
		sector := p.Sector
		if sector == "" {
			sector = "Unknown"
		}
		totals[sector] += p.MarketValue
		totalValue += p.MarketValue
	}

	if totalValue == 0 {
		return []SectorAllocation{}
	}

	allocations := make([]SectorAllocation, 0, len(totals))
	for sector, value := range totals {
		allocations = append(allocations, SectorAllocation{
			Sector:     sector,
			Value:      value,
			Percentage: value / totalValue * 100,
		})
	}

	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Value != allocations[j].Value {
			return allocations[i].Value > allocations[j].Value
		}
		return allocations[i].Sector < allocations[j].Sector
	})

	return allocations
}

// AssetAllocations 자산유형별 평가액/비중 집계
func AssetAllocations(positions []Position) []AssetAllocation {
	totals := make(map[AssetType]float64)
	var totalValue float64
	for _, p := range positions {
		totals[p.AssetType] += p.MarketValue
		totalValue += p.MarketValue
	}

	if totalValue == 0 {
		return []AssetAllocation{}
	}

	allocations := make([]AssetAllocation, 0, len(totals))
	for assetType, value := range totals {
		allocations = append(allocations, AssetAllocation{
			AssetType:  assetType,
			Value:      value,
			Percentage: value / totalValue * 100,
		})
	}

	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Value != allocations[j].Value {
			return allocations[i].Value > allocations[j].Value
		}
		return allocations[i].AssetType < allocations[j].AssetType
	})

	return allocations
}
