// AngelaMos | 2026
// entity.go

package auction

import (
	"time"
)

const (
	ConditionNew  = "New"
	ConditionUsed = "Used"
)

type Auction struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Category        string    `db:"category"`
	Condition       string    `db:"condition"`
	StartingBid     float64   `db:"starting_bid"`
	CurrentBid      float64   `db:"current_bid"`
	HighestBidderID *string   `db:"highest_bidder_id"`
	CreatedBy       string    `db:"created_by"`
	ImagePublicID   string    `db:"image_public_id"`
	ImageURL        string    `db:"image_url"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Settled         bool      `db:"settled"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (a *Auction) HasWinner() bool {
	return a.HighestBidderID != nil && *a.HighestBidderID != ""
}

func (a *Auction) Ended(now time.Time) bool {
	return now.After(a.EndTime)
}
