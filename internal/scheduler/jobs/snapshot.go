package jobs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/internal/portfolio"
)

// =============================================================================
// Snapshot Job - 일별 포트폴리오 가치 스냅샷
// =============================================================================

// SnapshotJob 시세 반영 후 포트폴리오 총 평가액을 기록
// 가치 이력은 성과/리스크 지표 계산의 입력이 됨
type SnapshotJob struct {
	service *portfolio.Service
	log     zerolog.Logger
}

// NewSnapshotJob creates a new snapshot job
func NewSnapshotJob(service *portfolio.Service, log zerolog.Logger) *SnapshotJob {
	return &SnapshotJob{
		service: service,
		log:     log.With().Str("job", "portfolio_snapshot").Logger(),
	}
}

// Name returns the job name
func (j *SnapshotJob) Name() string {
	return "portfolio_snapshot"
}

// Schedule 평일 18:00, 시세 동기화 이후
func (j *SnapshotJob) Schedule() string {
	return "0 0 18 * * 1-5"
}

// Run 현재 총 평가액을 오늘 스냅샷으로 기록
func (j *SnapshotJob) Run(ctx context.Context) error {
	if err := j.service.RecordSnapshot(ctx); err != nil {
		return fmt.Errorf("record snapshot failed: %w", err)
	}
	return nil
}
