// AngelaMos | 2026
// dto.go

package auction

import (
	"time"
)

// CreateRequest is populated from multipart form fields; the listing image
// file rides alongside it.
type CreateRequest struct {
	Title       string    `json:"title"       validate:"required,min=3,max=120"`
	Description string    `json:"description" validate:"required,max=2000"`
	Category    string    `json:"category"    validate:"required,max=60"`
	Condition   string    `json:"condition"   validate:"required,oneof=New Used"`
	StartingBid float64   `json:"startingBid" validate:"required,gt=0"`
	StartTime   time.Time `json:"startTime"   validate:"required"`
	EndTime     time.Time `json:"endTime"     validate:"required"`
}

type AuctionImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type AuctionResponse struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Condition       string       `json:"condition"`
	StartingBid     float64      `json:"startingBid"`
	CurrentBid      float64      `json:"currentBid"`
	HighestBidderID *string      `json:"highestBidder,omitempty"`
	CreatedBy       string       `json:"createdBy"`
	Image           AuctionImage `json:"image"`
	StartTime       time.Time    `json:"startTime"`
	EndTime         time.Time    `json:"endTime"`
	Settled         bool         `json:"settled"`
	CreatedAt       time.Time    `json:"createdAt"`
}

type AuctionListResponse struct {
	Items []AuctionResponse `json:"items"`
}

func toAuctionResponse(a *Auction) AuctionResponse {
	return AuctionResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Category:        a.Category,
		Condition:       a.Condition,
		StartingBid:     a.StartingBid,
		CurrentBid:      a.CurrentBid,
		HighestBidderID: a.HighestBidderID,
		CreatedBy:       a.CreatedBy,
		Image: AuctionImage{
			PublicID: a.ImagePublicID,
			URL:      a.ImageURL,
		},
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Settled:   a.Settled,
		CreatedAt: a.CreatedAt,
	}
}
