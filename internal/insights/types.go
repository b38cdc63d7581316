package insights

import "time"

// =============================================================================
// Insight Types - 규칙 기반 시그널 값 객체
// =============================================================================

// Thresholds 인사이트 규칙 임계값
// 검증된 모델이 아닌 도메인 상수이므로 설정값으로 취급
type Thresholds struct {
	// 최소 샘플 수 (미달 시 기본값 반환, 에러 아님)
	MinForecastReturns  int
	MinRiskScorePrices  int
	MinPatternPrices    int
	MinPredictionPrices int
	MinAnomalyPrices    int

	// VolatilityForecaster
	DefaultVolatility float64 // 샘플 부족 시 반환값 (연율화 %)

	// RiskScorer
	VolatilityWeight float64
	DrawdownWeight   float64
	LowRiskCutoff    float64
	MediumRiskCutoff float64

	// PatternDetector
	RSIPeriod      int
	RSIOversold    float64
	RSIOverbought  float64
	HighVolRatio   float64 // 최근 20일 std가 100일 std의 몇 배면 고변동성인지
	ShortVolWindow int
	LongVolWindow  int

	// PricePredictor
	PredictionWindow int // 평균 수익률/변동성 계산에 쓰는 최근 수익률 수

	// AnomalyDetector
	AnomalyZScore    float64
	AnomalyScoreUnit float64 // score = z / AnomalyScoreUnit

	// RecommendationEngine
	MaxPositionWeight  float64 // 집중 리밸런싱 임계 비중
	ReviewLossPercent  float64
	TakeProfitPercent  float64
	TakeProfitWeight   float64
	MinDistinctSectors int
}

// DefaultThresholds 기본 임계값
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinForecastReturns:  30,
		MinRiskScorePrices:  30,
		MinPatternPrices:    50,
		MinPredictionPrices: 30,
		MinAnomalyPrices:    30,

		DefaultVolatility: 20.0,

		VolatilityWeight: 0.6,
		DrawdownWeight:   0.4,
		LowRiskCutoff:    30.0,
		MediumRiskCutoff: 60.0,

		RSIPeriod:      14,
		RSIOversold:    30.0,
		RSIOverbought:  70.0,
		HighVolRatio:   1.5,
		ShortVolWindow: 20,
		LongVolWindow:  100,

		PredictionWindow: 30,

		AnomalyZScore:    3.0,
		AnomalyScoreUnit: 5.0,

		MaxPositionWeight:  0.20,
		ReviewLossPercent:  -10.0,
		TakeProfitPercent:  50.0,
		TakeProfitWeight:   0.15,
		MinDistinctSectors: 3,
	}
}

// =============================================================================
// Result Value Objects
// =============================================================================

// PricePrediction 단기 가격 외삽 결과
// Predictions 키는 "{h}d" 형식 (예: "7d")
type PricePrediction struct {
	Symbol       string             `json:"symbol"`
	CurrentPrice float64            `json:"current_price"`
	Predictions  map[string]float64 `json:"predictions"`
	Confidence   float64            `json:"confidence"` // [0,1]
	ModelUsed    string             `json:"model_used"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// 모델 라벨
const (
	ModelInsufficientData   = "insufficient_data"
	ModelTrendExtrapolation = "trend_extrapolation"
)

// AnomalyDetection 최근 수익률 이상치 감지 결과
// Score = z/5, z > 5이면 1을 넘을 수 있음 (클립하지 않음)
type AnomalyDetection struct {
	Symbol     string    `json:"symbol"`
	IsAnomaly  bool      `json:"is_anomaly"`
	Score      float64   `json:"score"`
	Reasoning  string    `json:"reasoning"`
	DetectedAt time.Time `json:"detected_at"`
}

// RiskScore 종합 리스크 점수
type RiskScore struct {
	Score float64 `json:"score"` // [0,100]
	Level string  `json:"level"` // low/medium/high
}

// 리스크 레벨
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// PatternFlags 기술적 패턴 플래그
// 데이터 부족이면 모든 플래그 false + Detected false
type PatternFlags struct {
	Detected       bool    `json:"detected"` // 패턴 분석 수행 여부
	Uptrend        bool    `json:"uptrend"`
	Downtrend      bool    `json:"downtrend"`
	HighVolatility bool    `json:"high_volatility"`
	Oversold       bool    `json:"oversold"`
	Overbought     bool    `json:"overbought"`
	RSI            float64 `json:"rsi"`
}

// 추천 유형
const (
	RecommendRebalance    = "rebalance"
	RecommendReview       = "review"
	RecommendConsiderSell = "consider_sell"
	RecommendDiversify    = "diversify"
)

// PortfolioRecommendation 보유 종목 규칙 기반 진단
// Symbol이 빈 문자열이면 포트폴리오 레벨 추천
type PortfolioRecommendation struct {
	Symbol         string   `json:"symbol,omitempty"`
	Type           string   `json:"type"`
	Confidence     float64  `json:"confidence"` // [0,1]
	Reasoning      string   `json:"reasoning"`
	ExpectedImpact *float64 `json:"expected_impact,omitempty"`
}
