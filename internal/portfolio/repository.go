package portfolio

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/invest-hub/backend/internal/analytics"
)

// Repository 포트폴리오 저장소
// ⭐ SSOT: 포지션/가치 스냅샷 영속화는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new portfolio repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetPositions 전체 포지션 조회 (심볼 순 정렬로 결정적 순회 순서 보장)
// 파생 필드(평가액, 손익)는 조회 시점에 계산
func (r *Repository) GetPositions(ctx context.Context) ([]analytics.Position, error) {
	query := `
		SELECT symbol, quantity, cost_basis, current_price, sector, asset_type
		FROM portfolio.positions
		ORDER BY symbol ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []analytics.Position
	for rows.Next() {
		var p analytics.Position
		var assetType string
		if err := rows.Scan(&p.Symbol, &p.Quantity, &p.CostBasis, &p.CurrentPrice, &p.Sector, &assetType); err != nil {
			return nil, err
		}
		p.AssetType = analytics.AssetType(assetType)
		p.MarketValue = p.Quantity * p.CurrentPrice
		p.GainLoss = p.MarketValue - p.Quantity*p.CostBasis
		if p.CostBasis > 0 {
			p.GainLossPercent = (p.CurrentPrice - p.CostBasis) / p.CostBasis * 100
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// UpsertPosition 포지션 저장/갱신
func (r *Repository) UpsertPosition(ctx context.Context, p analytics.Position) error {
	query := `
		INSERT INTO portfolio.positions (symbol, quantity, cost_basis, current_price, sector, asset_type, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (symbol) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			cost_basis = EXCLUDED.cost_basis,
			current_price = EXCLUDED.current_price,
			sector = EXCLUDED.sector,
			asset_type = EXCLUDED.asset_type,
			updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		p.Symbol, p.Quantity, p.CostBasis, p.CurrentPrice, p.Sector, string(p.AssetType),
	)
	return err
}

// UpdatePrice 현재가만 갱신 (시세 동기화 잡에서 사용)
func (r *Repository) UpdatePrice(ctx context.Context, symbol string, price float64) error {
	query := `
		UPDATE portfolio.positions
		SET current_price = $2, updated_at = NOW()
		WHERE symbol = $1
	`

	_, err := r.pool.Exec(ctx, query, symbol, price)
	return err
}

// UpdateSector 섹터만 갱신 (프로필 보강에서 사용)
func (r *Repository) UpdateSector(ctx context.Context, symbol, sector string) error {
	query := `
		UPDATE portfolio.positions
		SET sector = $2, updated_at = NOW()
		WHERE symbol = $1
	`

	_, err := r.pool.Exec(ctx, query, symbol, sector)
	return err
}

// SaveSnapshot 일별 포트폴리오 가치 스냅샷 저장
func (r *Repository) SaveSnapshot(ctx context.Context, date time.Time, totalValue float64) error {
	query := `
		INSERT INTO portfolio.value_snapshots (snapshot_date, total_value)
		VALUES ($1, $2)
		ON CONFLICT (snapshot_date) DO UPDATE SET
			total_value = EXCLUDED.total_value
	`

	_, err := r.pool.Exec(ctx, query, date, totalValue)
	return err
}

// GetValueHistory 최근 days일 가치 이력 조회 (과거→최신)
func (r *Repository) GetValueHistory(ctx context.Context, days int) ([]analytics.ValuePoint, error) {
	query := `
		SELECT snapshot_date, total_value
		FROM portfolio.value_snapshots
		WHERE snapshot_date >= CURRENT_DATE - $1::int
		ORDER BY snapshot_date ASC
	`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []analytics.ValuePoint
	for rows.Next() {
		var p analytics.ValuePoint
		if err := rows.Scan(&p.Date, &p.Value); err != nil {
			return nil, err
		}
		history = append(history, p)
	}
	return history, rows.Err()
}
