// AngelaMos | 2026
// repository.go

package commission

import (
	"context"
	"fmt"

	"github.com/primebid/auction-api/internal/core"
)

type MonthlyTotal struct {
	Month int     `db:"month"`
	Total float64 `db:"total"`
}

type Repository interface {
	Create(ctx context.Context, commission *Commission) error
	MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	commission *Commission,
) error {
	query := `
		INSERT INTO commissions (id, amount, auction_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &commission.CreatedAt, query,
		commission.ID,
		commission.Amount,
		commission.AuctionID,
		commission.UserID,
	)
	if err != nil {
		return fmt.Errorf("create commission: %w", err)
	}

	return nil
}

func (r *repository) MonthlyTotals(
	ctx context.Context,
	year int,
) ([]MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month,
		       COALESCE(SUM(amount), 0) AS total
		FROM commissions
		WHERE EXTRACT(YEAR FROM created_at)::int = $1
		GROUP BY month
		ORDER BY month`

	var totals []MonthlyTotal
	if err := r.db.SelectContext(ctx, &totals, query, year); err != nil {
		return nil, fmt.Errorf("monthly commission totals: %w", err)
	}

	return totals, nil
}
