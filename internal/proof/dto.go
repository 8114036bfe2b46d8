// AngelaMos | 2026
// dto.go

package proof

import (
	"time"
)

type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=Pending Approved Rejected Settled"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// SubmitRequest rides in a multipart form next to the proof image file.
type SubmitRequest struct {
	Amount  float64 `json:"amount"  validate:"required,gt=0"`
	Comment string  `json:"comment" validate:"required,max=500"`
}

type ProofImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type ProofResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Amount    float64    `json:"amount"`
	Proof     ProofImage `json:"proof"`
	Comment   string     `json:"comment"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ProofListResponse struct {
	PaymentProofs []ProofResponse `json:"paymentProofs"`
}

func toProofResponse(p *PaymentProof) ProofResponse {
	return ProofResponse{
		ID:     p.ID,
		UserID: p.UserID,
		Amount: p.Amount,
		Proof: ProofImage{
			PublicID: p.ProofPublicID,
			URL:      p.ProofURL,
		},
		Comment:   p.Comment,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
