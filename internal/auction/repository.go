// AngelaMos | 2026
// repository.go

package auction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/primebid/auction-api/internal/core"
)

// ErrAlreadySettled reports a settle attempt on a row whose settled flag is
// already set, distinguishing it from a missing row.
var ErrAlreadySettled = errors.New("auction already settled")

type Repository interface {
	Create(ctx context.Context, auction *Auction) error
	GetByID(ctx context.Context, id string) (*Auction, error)
	List(ctx context.Context) ([]Auction, error)
	MarkSettled(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const auctionColumns = `id, title, description, category, condition,
	starting_bid, current_bid, highest_bidder_id, created_by,
	image_public_id, image_url, start_time, end_time, settled,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, auction *Auction) error {
	query := `
		INSERT INTO auctions (
			id, title, description, category, condition, starting_bid,
			current_bid, created_by, image_public_id, image_url,
			start_time, end_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, auction, query,
		auction.ID,
		auction.Title,
		auction.Description,
		auction.Category,
		auction.Condition,
		auction.StartingBid,
		auction.CurrentBid,
		auction.CreatedBy,
		auction.ImagePublicID,
		auction.ImageURL,
		auction.StartTime,
		auction.EndTime,
	)
	if err != nil {
		return fmt.Errorf("create auction: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Auction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM auctions
		WHERE id = $1`, auctionColumns)

	var auction Auction
	err := r.db.GetContext(ctx, &auction, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get auction: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get auction: %w", err)
	}

	return &auction, nil
}

func (r *repository) List(ctx context.Context) ([]Auction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM auctions
		ORDER BY created_at DESC`, auctionColumns)

	var auctions []Auction
	if err := r.db.SelectContext(ctx, &auctions, query); err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	return auctions, nil
}

// MarkSettled flips the settled flag once. Zero affected rows means the row
// was settled or deleted underneath us; the re-read tells the two apart so a
// racing settle reports ErrAlreadySettled rather than a phantom not-found.
func (r *repository) MarkSettled(ctx context.Context, id string) error {
	query := `
		UPDATE auctions
		SET settled = TRUE, updated_at = NOW()
		WHERE id = $1 AND settled = FALSE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark settled: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark settled: %w", err)
	}

	if rows == 0 {
		var settled bool
		err := r.db.GetContext(
			ctx,
			&settled,
			`SELECT settled FROM auctions WHERE id = $1`,
			id,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("mark settled: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("mark settled: %w", err)
		}
		if settled {
			return fmt.Errorf("mark settled: %w", ErrAlreadySettled)
		}
		return fmt.Errorf("mark settled: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM auctions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete auction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete auction: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete auction: %w", core.ErrNotFound)
	}

	return nil
}
