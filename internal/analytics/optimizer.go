package analytics

import "errors"

// =============================================================================
// Portfolio Optimizer - 점수 기반 휴리스틱 배분
// =============================================================================

var (
	// ErrNoPositions 포지션이 없으면 총 평가액 0으로 나누게 되므로 fail-closed
	ErrNoPositions = errors.New("no positions to optimize")
)

const (
	// assumedPositionVol 종목별 가정 변동성 (실측값 아닌 도메인 상수)
	assumedPositionVol = 0.20

	// assumedPortfolioVol 포트폴리오 가정 변동성
	assumedPortfolioVol = 0.18
)

// OptimizePortfolio 점수 가중 배분 추천
// riskTolerance ∈ [0,1] (경계 검증은 호출자 책임)
// targetReturn은 현재 알고리즘에서 미사용 (인터페이스 호환용)
//
// riskTolerance < 0.5일 때 ×2 블렌딩 공식은 rt가 0 근처에서
// 기여 계수가 비는 구간을 만드는 검증 안 된 휴리스틱이지만
// 호환성을 위해 그대로 유지
func OptimizePortfolio(positions []Position, riskTolerance float64, targetReturn *float64) (*OptimizationResponse, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}

	var totalValue float64
	for _, p := range positions {
		totalValue += p.MarketValue
	}

	// 1. 현재 비중
	currentWeights := make(map[string]float64, len(positions))
	for _, p := range positions {
		currentWeights[p.Symbol] = p.MarketValue / totalValue
	}

	// 2. 수익률/가정변동성 점수 (음수는 0으로 클립)
	scores := make([]float64, len(positions))
	var scoreSum float64
	for i, p := range positions {
		s := (p.GainLossPercent / 100) / assumedPositionVol
		if s < 0 {
			s = 0
		}
		scores[i] = s
		scoreSum += s
	}

	weights := make([]float64, len(positions))
	equalWeight := 1.0 / float64(len(positions))

	if scoreSum == 0 {
		// 3. 전부 0점이면 균등 배분
		for i := range weights {
			weights[i] = equalWeight
		}
	} else {
		// 4. 점수 비례, 낮은 위험성향은 균등 배분 쪽으로 블렌딩
		for i := range weights {
			base := scores[i] / scoreSum
			if riskTolerance < 0.5 {
				weights[i] = base*riskTolerance*2 + equalWeight*(1-riskTolerance*2)
			} else {
				weights[i] = base
			}
		}
	}

	// 5. 합이 정확히 1이 되도록 재정규화
	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	recommended := make(map[string]float64, len(positions))
	for i, p := range positions {
		recommended[p.Symbol] = weights[i] / weightSum
	}

	// 6. 기대 수익률/변동성/샤프
	var expectedReturn float64
	for i, p := range positions {
		expectedReturn += (weights[i] / weightSum) * (p.GainLossPercent / 100)
	}

	sharpe := 0.0
	if assumedPortfolioVol > 0 {
		sharpe = expectedReturn / assumedPortfolioVol
	}

	return &OptimizationResponse{
		RecommendedWeights: recommended,
		ExpectedReturn:     expectedReturn * 100,
		ExpectedVolatility: assumedPortfolioVol * 100,
		SharpeRatio:        sharpe,
		CurrentAllocation:  currentWeights,
	}, nil
}
