package marketdata

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DailyClose 일별 종가
type DailyClose struct {
	Symbol string
	Date   time.Time
	Close  float64
}

// PriceRepository 일별 종가 저장소
// ⭐ SSOT: 시세 이력 영속화는 여기서만
type PriceRepository struct {
	pool *pgxpool.Pool
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{pool: pool}
}

// GetCloses 최근 days일 종가 조회 (과거→최신)
// 지표 계산 입력으로 바로 쓸 수 있게 float 슬라이스로 반환
func (r *PriceRepository) GetCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	query := `
		SELECT close_price
		FROM marketdata.daily_closes
		WHERE symbol = $1 AND trade_date >= CURRENT_DATE - $2::int
		ORDER BY trade_date ASC
	`

	rows, err := r.pool.Query(ctx, query, symbol, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var closes []float64
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		closes = append(closes, c)
	}
	return closes, rows.Err()
}

// GetLatestClose 최신 종가 조회
func (r *PriceRepository) GetLatestClose(ctx context.Context, symbol string) (*DailyClose, error) {
	query := `
		SELECT symbol, trade_date, close_price
		FROM marketdata.daily_closes
		WHERE symbol = $1
		ORDER BY trade_date DESC
		LIMIT 1
	`

	var c DailyClose
	err := r.pool.QueryRow(ctx, query, symbol).Scan(&c.Symbol, &c.Date, &c.Close)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save 종가 단건 저장
func (r *PriceRepository) Save(ctx context.Context, c DailyClose) error {
	query := `
		INSERT INTO marketdata.daily_closes (symbol, trade_date, close_price)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol, trade_date) DO UPDATE SET
			close_price = EXCLUDED.close_price
	`

	_, err := r.pool.Exec(ctx, query, c.Symbol, c.Date, c.Close)
	return err
}

// SaveBatch 종가 일괄 저장
func (r *PriceRepository) SaveBatch(ctx context.Context, closes []DailyClose) error {
	for _, c := range closes {
		if err := r.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
