package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// =============================================================================
// Anomaly Detector - 최근 수익률 z-score 기반 이상치 감지
// =============================================================================

// AnomalyDetector 이상치 감지기
type AnomalyDetector struct {
	thresholds Thresholds
	log        zerolog.Logger
}

// NewAnomalyDetector 새 감지기 생성
func NewAnomalyDetector(log zerolog.Logger) *AnomalyDetector {
	return &AnomalyDetector{
		thresholds: DefaultThresholds(),
		log:        log.With().Str("component", "insights.detector").Logger(),
	}
}

// NewAnomalyDetectorWithThresholds 커스텀 임계값으로 감지기 생성
func NewAnomalyDetectorWithThresholds(thresholds Thresholds, log zerolog.Logger) *AnomalyDetector {
	return &AnomalyDetector{
		thresholds: thresholds,
		log:        log.With().Str("component", "insights.detector").Logger(),
	}
}

// Detect 최근 수익률이 과거 분포 대비 이상치인지 판정
// 가격이 30개 미만이면 is_anomaly=false, score 0
// score = z/5 (z > 5이면 1을 넘을 수 있음, 클립하지 않음)
func (d *AnomalyDetector) Detect(symbol string, prices []float64) AnomalyDetection {
	result := AnomalyDetection{
		Symbol:     symbol,
		DetectedAt: time.Now(),
	}

	if len(prices) < d.thresholds.MinAnomalyPrices {
		result.Reasoning = "Insufficient data for anomaly detection"
		return result
	}

	returns := analytics.CalculateReturns(prices)
	recentReturn := returns[len(returns)-1]

	// 마지막 수익률을 제외한 과거 분포 기준
	history := returns[:len(returns)-1]
	avg := mean(history)
	std := popStd(history)

	z := 0.0
	if std > 0 {
		z = math.Abs((recentReturn - avg) / std)
	}

	result.IsAnomaly = z > d.thresholds.AnomalyZScore
	result.Score = z / d.thresholds.AnomalyScoreUnit

	if result.IsAnomaly {
		direction := "drop"
		if recentReturn > avg {
			direction = "spike"
		}
		// 방향은 direction이 말하므로 크기는 부호 없이
		result.Reasoning = fmt.Sprintf("Unusual %s detected: %.2f%% move (z-score: %.2f)",
			direction, math.Abs(recentReturn)*100, z)

		d.log.Debug().
			Str("symbol", symbol).
			Float64("recent_return", recentReturn).
			Float64("z_score", z).
			Msg("anomaly detected")
	} else {
		result.Reasoning = "No significant anomalies detected in recent price action"
	}

	return result
}
