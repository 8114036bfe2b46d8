// AngelaMos | 2026
// service.go

package proof

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/storage"
)

type Service struct {
	repo        Repository
	store       storage.Store
	proofFolder string
}

func NewService(
	repo Repository,
	store storage.Store,
	storageCfg config.StorageConfig,
) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		proofFolder: storageCfg.ProofFolder,
	}
}

func (s *Service) List(ctx context.Context) ([]ProofResponse, error) {
	proofs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProofResponse, 0, len(proofs))
	for i := range proofs {
		responses = append(responses, toProofResponse(&proofs[i]))
	}

	return responses, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ProofResponse, error) {
	if err := validateProofID(id); err != nil {
		return nil, err
	}

	proof, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toProofResponse(proof)
	return &resp, nil
}

// UpdateStatus overwrites the proof's status and amount with the request
// values exactly. Transitions are unrestricted; the review desk may move a
// settled proof back to pending if it was settled in error.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id string,
	req UpdateStatusRequest,
) (*ProofResponse, error) {
	if err := validateProofID(id); err != nil {
		return nil, err
	}

	if !ValidStatus(req.Status) {
		return nil, core.ValidationError(
			fmt.Sprintf("invalid status %q", req.Status),
		)
	}

	proof, err := s.repo.UpdateStatus(ctx, id, req.Status, req.Amount)
	if err != nil {
		return nil, err
	}

	resp := toProofResponse(proof)
	return &resp, nil
}

// Delete removes the proof row permanently. Commissions recorded while the
// proof was approved are intentionally left untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateProofID(id); err != nil {
		return err
	}

	proof, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	//nolint:errcheck // best-effort removal of the stored image
	_ = s.store.Destroy(ctx, proof.ProofPublicID)

	return nil
}

// Submit stores the screenshot first and records the proof as Pending. An
// insert failure destroys the fresh upload so nothing is orphaned.
func (s *Service) Submit(
	ctx context.Context,
	userID string,
	req SubmitRequest,
	image io.Reader,
) (*ProofResponse, error) {
	asset, err := s.store.Upload(ctx, image, s.proofFolder)
	if err != nil {
		return nil, core.UpstreamError(
			fmt.Errorf("upload proof image: %w", err),
		)
	}

	proof := &PaymentProof{
		ID:            uuid.New().String(),
		UserID:        userID,
		Amount:        req.Amount,
		ProofPublicID: asset.PublicID,
		ProofURL:      asset.URL,
		Comment:       req.Comment,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, proof); err != nil {
		//nolint:errcheck // best-effort cleanup of the orphaned upload
		_ = s.store.Destroy(ctx, asset.PublicID)
		return nil, err
	}

	resp := toProofResponse(proof)
	return &resp, nil
}

// Malformed identifiers fail before any storage access, so a garbage id is a
// validation error rather than a not-found.
func validateProofID(id string) error {
	if uuid.Validate(id) != nil {
		return core.ValidationError("Invalid ID format.")
	}
	return nil
}
