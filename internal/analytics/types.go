package analytics

import "time"

// =============================================================================
// Domain Types - 포트폴리오/지표 값 객체
// =============================================================================

// AssetType 자산 유형
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetETF    AssetType = "etf"
	AssetBond   AssetType = "bond"
	AssetCrypto AssetType = "crypto"
	AssetCash   AssetType = "cash"
)

// Position 보유 포지션 (읽기 전용 입력)
// 불변식: MarketValue ≈ Quantity × CurrentPrice
type Position struct {
	Symbol          string    `json:"symbol"`
	Quantity        float64   `json:"quantity"` // 소수 수량 허용
	CostBasis       float64   `json:"cost_basis"`
	CurrentPrice    float64   `json:"current_price"`
	MarketValue     float64   `json:"market_value"`
	GainLoss        float64   `json:"gain_loss"`
	GainLossPercent float64   `json:"gain_loss_percent"`
	Sector          string    `json:"sector"`
	AssetType       AssetType `json:"asset_type"`
}

// ValuePoint 일별 포트폴리오 가치 스냅샷
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// =============================================================================
// Result Value Objects - 호출마다 새로 생성, 불변
// =============================================================================

// PerformanceMetrics 포트폴리오 성과 지표
// 퍼센트 필드는 모두 ×100 스케일
type PerformanceMetrics struct {
	TotalReturn        float64 `json:"total_return"`
	TotalReturnPercent float64 `json:"total_return_percent"`
	DailyReturn        float64 `json:"daily_return"`
	MonthlyReturn      float64 `json:"monthly_return"`
	YTDReturn          float64 `json:"ytd_return"`
	Volatility         float64 `json:"volatility"`
	SharpeRatio        float64 `json:"sharpe_ratio"`
	MaxDrawdown        float64 `json:"max_drawdown"`
	Beta               float64 `json:"beta"`
}

// RiskAnalysis 리스크 분석 결과
type RiskAnalysis struct {
	Volatility  float64 `json:"volatility"`   // 연율화 ×100
	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"` // ×100
	VaR95       float64 `json:"var_95"`       // ×100
	VaR99       float64 `json:"var_99"`       // ×100
	CVaR95      float64 `json:"cvar_95"`      // ×100
	Beta        float64 `json:"beta"`
}

// OptimizationResponse 배분 추천 결과
// RecommendedWeights 합은 정규화 후 정확히 1.0 (±부동소수 오차)
type OptimizationResponse struct {
	RecommendedWeights map[string]float64 `json:"recommended_weights"`
	ExpectedReturn     float64            `json:"expected_return"`     // ×100
	ExpectedVolatility float64            `json:"expected_volatility"` // ×100
	SharpeRatio        float64            `json:"sharpe_ratio"`
	CurrentAllocation  map[string]float64 `json:"current_allocation"`
}

// SectorAllocation 섹터별 배분
type SectorAllocation struct {
	Sector     string  `json:"sector"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// AssetAllocation 자산유형별 배분
type AssetAllocation struct {
	AssetType  AssetType `json:"asset_type"`
	Value      float64   `json:"value"`
	Percentage float64   `json:"percentage"`
}
