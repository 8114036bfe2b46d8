// AngelaMos | 2026
// service_test.go

package proof

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/storage"
)

type fakeRepo struct {
	proofs      map[string]*PaymentProof
	lookups     int
	failCreate  bool
	lastUpdated *PaymentProof
}

func newFakeRepo(proofs ...*PaymentProof) *fakeRepo {
	r := &fakeRepo{proofs: make(map[string]*PaymentProof)}
	for _, p := range proofs {
		r.proofs[p.ID] = p
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, proof *PaymentProof) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	proof.CreatedAt = time.Now()
	proof.UpdatedAt = proof.CreatedAt
	r.proofs[proof.ID] = proof
	return nil
}

func (r *fakeRepo) GetByID(
	_ context.Context,
	id string,
) (*PaymentProof, error) {
	r.lookups++
	p, ok := r.proofs[id]
	if !ok {
		return nil, fmt.Errorf("get payment proof: %w", core.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context) ([]PaymentProof, error) {
	out := make([]PaymentProof, 0, len(r.proofs))
	for _, p := range r.proofs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(
	_ context.Context,
	id, status string,
	amount float64,
) (*PaymentProof, error) {
	r.lookups++
	p, ok := r.proofs[id]
	if !ok {
		return nil, fmt.Errorf("update payment proof: %w", core.ErrNotFound)
	}
	p.Status = status
	p.Amount = amount
	p.UpdatedAt = time.Now()
	r.lastUpdated = p
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.lookups++
	if _, ok := r.proofs[id]; !ok {
		return fmt.Errorf("delete payment proof: %w", core.ErrNotFound)
	}
	delete(r.proofs, id)
	return nil
}

type fakeStore struct {
	uploads   int
	destroyed []string
}

func (s *fakeStore) Upload(
	_ context.Context,
	_ io.Reader,
	folder string,
) (*storage.Asset, error) {
	s.uploads++
	id := fmt.Sprintf("%s/upload-%d", folder, s.uploads)
	return &storage.Asset{
		PublicID: id,
		URL:      "https://cdn.example.test/" + id,
	}, nil
}

func (s *fakeStore) Destroy(_ context.Context, publicID string) error {
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

func newTestService(repo Repository, store storage.Store) *Service {
	return NewService(repo, store, config.StorageConfig{
		ProofFolder: "test/proofs",
	})
}

func pendingProof(amount float64) *PaymentProof {
	now := time.Now()
	return &PaymentProof{
		ID:            uuid.New().String(),
		UserID:        uuid.New().String(),
		Amount:        amount,
		ProofPublicID: "test/proofs/existing",
		ProofURL:      "https://cdn.example.test/existing",
		Comment:       "march commission",
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestGetMalformedIDFailsBeforeLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeStore{})

	_, err := svc.Get(context.Background(), "not-a-uuid")

	require.Error(t, err)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Zero(t, repo.lookups, "lookup must not run for a malformed id")
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeStore{})

	_, err := svc.Get(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateStatusOverwritesExactly(t *testing.T) {
	existing := pendingProof(120)
	repo := newFakeRepo(existing)
	svc := newTestService(repo, &fakeStore{})

	transitions := []struct {
		name   string
		status string
		amount float64
	}{
		{"pending to approved", StatusApproved, 100},
		{"approved to settled", StatusSettled, 80},
		{"settled back to pending", StatusPending, 120},
		{"pending to rejected", StatusRejected, 120},
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.UpdateStatus(
				context.Background(),
				existing.ID,
				UpdateStatusRequest{Status: tc.status, Amount: tc.amount},
			)

			require.NoError(t, err)
			require.Equal(t, tc.status, got.Status)
			require.Equal(t, tc.amount, got.Amount)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	existing := pendingProof(50)
	repo := newFakeRepo(existing)
	svc := newTestService(repo, &fakeStore{})

	_, err := svc.UpdateStatus(
		context.Background(),
		existing.ID,
		UpdateStatusRequest{Status: "Archived", Amount: 50},
	)

	require.Error(t, err)
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Equal(t, StatusPending, repo.proofs[existing.ID].Status)
}

func TestUpdateStatusUnknownIDMutatesNothing(t *testing.T) {
	existing := pendingProof(50)
	repo := newFakeRepo(existing)
	svc := newTestService(repo, &fakeStore{})

	_, err := svc.UpdateStatus(
		context.Background(),
		uuid.New().String(),
		UpdateStatusRequest{Status: StatusApproved, Amount: 999},
	)

	require.ErrorIs(t, err, core.ErrNotFound)
	require.Equal(t, StatusPending, repo.proofs[existing.ID].Status)
	require.Equal(t, float64(50), repo.proofs[existing.ID].Amount)
}

func TestDeleteRemovesProofAndImage(t *testing.T) {
	existing := pendingProof(75)
	repo := newFakeRepo(existing)
	store := &fakeStore{}
	svc := newTestService(repo, store)

	err := svc.Delete(context.Background(), existing.ID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), existing.ID)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.Equal(t, []string{existing.ProofPublicID}, store.destroyed)
}

func TestDeleteMalformedIDFailsBeforeLookup(t *testing.T) {
	repo := newFakeRepo(pendingProof(10))
	svc := newTestService(repo, &fakeStore{})

	err := svc.Delete(context.Background(), "1234")

	require.Error(t, err)
	require.Zero(t, repo.lookups)
	require.Len(t, repo.proofs, 1)
}

func TestSubmitCreatesPendingProof(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newTestService(repo, store)

	got, err := svc.Submit(
		context.Background(),
		uuid.New().String(),
		SubmitRequest{Amount: 42.5, Comment: "april commission"},
		strings.NewReader("fake image bytes"),
	)

	require.NoError(t, err)
	require.Equal(t, StatusPending, got.Status)
	require.Equal(t, 42.5, got.Amount)
	require.NotEmpty(t, got.Proof.PublicID)
	require.Equal(t, 1, store.uploads)
	require.Empty(t, store.destroyed)
}

func TestSubmitCleansUpUploadWhenInsertFails(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = true
	store := &fakeStore{}
	svc := newTestService(repo, store)

	_, err := svc.Submit(
		context.Background(),
		uuid.New().String(),
		SubmitRequest{Amount: 10, Comment: "broken"},
		strings.NewReader("fake image bytes"),
	)

	require.Error(t, err)
	require.Len(t, store.destroyed, 1)
}
