// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/primebid/auction-api/internal/core"
)

// PlatformCounts is the business-side snapshot shown on the review desk
// dashboard next to the infrastructure stats.
type PlatformCounts struct {
	Users           int `db:"users"            json:"users"`
	Auctioneers     int `db:"auctioneers"      json:"auctioneers"`
	Bidders         int `db:"bidders"          json:"bidders"`
	PendingProofs   int `db:"pending_proofs"   json:"pendingProofs"`
	OpenAuctions    int `db:"open_auctions"    json:"openAuctions"`
	SettledAuctions int `db:"settled_auctions" json:"settledAuctions"`
}

type Repository interface {
	PlatformCounts(ctx context.Context) (*PlatformCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) PlatformCounts(
	ctx context.Context,
) (*PlatformCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)::int AS users,
			(SELECT COUNT(*) FROM users
				WHERE role = 'Auctioneer')::int AS auctioneers,
			(SELECT COUNT(*) FROM users
				WHERE role = 'Bidder')::int AS bidders,
			(SELECT COUNT(*) FROM payment_proofs
				WHERE status = 'Pending')::int AS pending_proofs,
			(SELECT COUNT(*) FROM auctions
				WHERE settled = FALSE)::int AS open_auctions,
			(SELECT COUNT(*) FROM auctions
				WHERE settled = TRUE)::int AS settled_auctions`

	var counts PlatformCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("platform counts: %w", err)
	}

	return &counts, nil
}
