// AngelaMos | 2026
// entity.go

package commission

import (
	"time"
)

// Commission is an insert-only ledger row recorded when an auction settles.
// Deleting a payment proof never touches these rows.
type Commission struct {
	ID        string    `db:"id"`
	Amount    float64   `db:"amount"`
	AuctionID string    `db:"auction_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
