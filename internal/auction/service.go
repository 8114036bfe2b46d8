// AngelaMos | 2026
// service.go

package auction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/primebid/auction-api/internal/commission"
	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/storage"
	"github.com/primebid/auction-api/internal/user"
)

// settleTx bundles the repositories that share one settlement transaction.
type settleTx struct {
	auctions    Repository
	users       user.Repository
	commissions commission.Repository
}

type Service struct {
	runTx          func(ctx context.Context, fn func(settleTx) error) error
	repo           Repository
	store          storage.Store
	auctionFolder  string
	commissionRate float64
	now            func() time.Time
}

func NewService(
	db *sqlx.DB,
	repo Repository,
	store storage.Store,
	storageCfg config.StorageConfig,
	commissionCfg config.CommissionConfig,
) *Service {
	return &Service{
		runTx:          sqlTxRunner(db),
		repo:           repo,
		store:          store,
		auctionFolder:  storageCfg.AuctionFolder,
		commissionRate: commissionCfg.Rate,
		now:            time.Now,
	}
}

func sqlTxRunner(
	db *sqlx.DB,
) func(ctx context.Context, fn func(settleTx) error) error {
	return func(ctx context.Context, fn func(settleTx) error) error {
		return core.InTx(ctx, db, func(tx *sqlx.Tx) error {
			return fn(settleTx{
				auctions:    NewRepository(tx),
				users:       user.NewRepository(tx),
				commissions: commission.NewRepository(tx),
			})
		})
	}
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreateRequest,
	image io.Reader,
) (*AuctionResponse, error) {
	now := s.now()

	if req.StartTime.Before(now) {
		return nil, core.ValidationError(
			"Auction starting time must be greater than present time.",
		)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, core.ValidationError(
			"Auction ending time must be greater than starting time.",
		)
	}

	asset, err := s.store.Upload(ctx, image, s.auctionFolder)
	if err != nil {
		return nil, core.UpstreamError(
			fmt.Errorf("upload auction image: %w", err),
		)
	}

	auction := &Auction{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Condition:     req.Condition,
		StartingBid:   req.StartingBid,
		CurrentBid:    0,
		CreatedBy:     ownerID,
		ImagePublicID: asset.PublicID,
		ImageURL:      asset.URL,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}

	if err := s.repo.Create(ctx, auction); err != nil {
		//nolint:errcheck // best-effort cleanup of the orphaned upload
		_ = s.store.Destroy(ctx, asset.PublicID)
		return nil, err
	}

	resp := toAuctionResponse(auction)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]AuctionResponse, error) {
	auctions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AuctionResponse, 0, len(auctions))
	for i := range auctions {
		responses = append(responses, toAuctionResponse(&auctions[i]))
	}

	return responses, nil
}

func (s *Service) Get(
	ctx context.Context,
	id string,
) (*AuctionResponse, error) {
	if err := validateAuctionID(id); err != nil {
		return nil, err
	}

	auction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toAuctionResponse(auction)
	return &resp, nil
}

// Delete hard-deletes the listing and drops its stored image. Commission
// ledger rows referencing the auction are left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateAuctionID(id); err != nil {
		return err
	}

	auction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	//nolint:errcheck // best-effort removal of the stored image
	_ = s.store.Destroy(ctx, auction.ImagePublicID)

	return nil
}

// Settle closes out an ended auction in one transaction: the auction is
// marked settled, a commission ledger row is recorded at the configured rate
// of the winning bid, the winner's lifetime spend grows by the bid and the
// owner's unpaid commission by the commission. An auction that ended with no
// bids is marked settled with no money movement.
func (s *Service) Settle(
	ctx context.Context,
	id, callerID string,
	callerIsSuperAdmin bool,
) (*AuctionResponse, error) {
	if err := validateAuctionID(id); err != nil {
		return nil, err
	}

	var settled *Auction

	err := s.runTx(ctx, func(tx settleTx) error {
		auction, err := tx.auctions.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if auction.CreatedBy != callerID && !callerIsSuperAdmin {
			return core.ForbiddenError(
				"only the auction owner may settle this auction",
			)
		}

		if auction.Settled {
			return core.ValidationError("Auction already settled.")
		}

		if !auction.Ended(s.now()) {
			return core.ValidationError("Auction is still active.")
		}

		if err := tx.auctions.MarkSettled(ctx, auction.ID); err != nil {
			if errors.Is(err, ErrAlreadySettled) {
				return core.ValidationError("Auction already settled.")
			}
			return err
		}

		if auction.HasWinner() {
			commissionAmount := s.commissionRate * auction.CurrentBid

			if err := tx.commissions.Create(ctx, &commission.Commission{
				ID:        uuid.New().String(),
				Amount:    commissionAmount,
				AuctionID: auction.ID,
				UserID:    auction.CreatedBy,
			}); err != nil {
				return err
			}

			if err := tx.users.AddMoneySpent(
				ctx,
				*auction.HighestBidderID,
				auction.CurrentBid,
			); err != nil {
				return err
			}

			if err := tx.users.AddUnpaidCommission(
				ctx,
				auction.CreatedBy,
				commissionAmount,
			); err != nil {
				return err
			}
		}

		auction.Settled = true
		settled = auction
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toAuctionResponse(settled)
	return &resp, nil
}

func validateAuctionID(id string) error {
	if uuid.Validate(id) != nil {
		return core.ValidationError("Invalid ID format.")
	}
	return nil
}
