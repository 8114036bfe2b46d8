// AngelaMos | 2026
// entity.go

package proof

import (
	"time"
)

// Review states for a commission payment proof. The review desk may move a
// proof between any two states; there is no enforced ordering.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
	StatusSettled  = "Settled"
)

type PaymentProof struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Amount        float64   `db:"amount"`
	ProofPublicID string    `db:"proof_public_id"`
	ProofURL      string    `db:"proof_url"`
	Comment       string    `db:"comment"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusSettled:
		return true
	}
	return false
}
