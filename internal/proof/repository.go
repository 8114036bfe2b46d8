// AngelaMos | 2026
// repository.go

package proof

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/primebid/auction-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, proof *PaymentProof) error
	GetByID(ctx context.Context, id string) (*PaymentProof, error)
	List(ctx context.Context) ([]PaymentProof, error)
	UpdateStatus(
		ctx context.Context,
		id, status string,
		amount float64,
	) (*PaymentProof, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const proofColumns = `id, user_id, amount, proof_public_id, proof_url,
	comment, status, created_at, updated_at`

func (r *repository) Create(ctx context.Context, proof *PaymentProof) error {
	query := `
		INSERT INTO payment_proofs (
			id, user_id, amount, proof_public_id, proof_url, comment, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, proof, query,
		proof.ID,
		proof.UserID,
		proof.Amount,
		proof.ProofPublicID,
		proof.ProofURL,
		proof.Comment,
		proof.Status,
	)
	if err != nil {
		return fmt.Errorf("create payment proof: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*PaymentProof, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payment_proofs
		WHERE id = $1`, proofColumns)

	var proof PaymentProof
	err := r.db.GetContext(ctx, &proof, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get payment proof: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get payment proof: %w", err)
	}

	return &proof, nil
}

func (r *repository) List(ctx context.Context) ([]PaymentProof, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payment_proofs
		ORDER BY created_at DESC`, proofColumns)

	var proofs []PaymentProof
	if err := r.db.SelectContext(ctx, &proofs, query); err != nil {
		return nil, fmt.Errorf("list payment proofs: %w", err)
	}

	return proofs, nil
}

// UpdateStatus overwrites status and amount unconditionally and returns the
// stored row. Concurrent updates resolve last-write-wins at the row level.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
	amount float64,
) (*PaymentProof, error) {
	query := fmt.Sprintf(`
		UPDATE payment_proofs
		SET status = $2, amount = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, proofColumns)

	var proof PaymentProof
	err := r.db.GetContext(ctx, &proof, query, id, status, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update payment proof: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update payment proof: %w", err)
	}

	return &proof, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payment_proofs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete payment proof: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment proof: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete payment proof: %w", core.ErrNotFound)
	}

	return nil
}
