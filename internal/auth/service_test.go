// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/middleware"
	"github.com/primebid/auction-api/internal/storage"
)

type fakeUsers struct {
	byEmail    map[string]*UserInfo
	created    []CreateUserParams
	duplicate  bool
	rehashedTo string
}

func (f *fakeUsers) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUsers) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeUsers) Create(
	_ context.Context,
	params CreateUserParams,
) (*UserInfo, error) {
	if f.duplicate {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	f.created = append(f.created, params)
	return &UserInfo{
		ID:           uuid.New().String(),
		UserName:     params.UserName,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
	}, nil
}

func (f *fakeUsers) UpdatePassword(
	_ context.Context,
	_, passwordHash string,
) error {
	f.rehashedTo = passwordHash
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

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	cfg := config.JWTConfig{
		PrivateKeyPath: filepath.Join(dir, "private.pem"),
		PublicKeyPath:  filepath.Join(dir, "public.pem"),
		TokenExpire:    time.Hour,
		Issuer:         "auction-api-test",
		Audience:       "auction-platform-test",
	}

	require.NoError(t, GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath))

	manager, err := NewJWTManager(cfg)
	require.NoError(t, err)
	return manager
}

func newTestService(
	t *testing.T,
	users UserProvider,
	store storage.Store,
) *Service {
	t.Helper()
	return NewService(
		newTestJWTManager(t),
		users,
		store,
		nil,
		config.StorageConfig{ProfileFolder: "test/users"},
	)
}

func validAuctioneerRequest() RegisterRequest {
	return RegisterRequest{
		UserName:               "hamza",
		Email:                  "hamza@example.test",
		Phone:                  "03001234567",
		Password:               "sup3r-secret",
		Address:                "Lahore",
		Role:                   middleware.RoleAuctioneer,
		BankAccountName:        "Hamza A",
		BankAccountNumber:      "PK00BANK0000123",
		BankName:               "Meezan",
		EasypaisaAccountNumber: "03001234567",
		PaypalEmail:            "hamza@paypal.test",
	}
}

func TestRegisterAuctioneerMissingBankDetails(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		message string
	}{
		{
			name: "missing bank account",
			mutate: func(r *RegisterRequest) {
				r.BankAccountNumber = ""
			},
			message: "Please provide your full bank details.",
		},
		{
			name: "missing easypaisa number",
			mutate: func(r *RegisterRequest) {
				r.EasypaisaAccountNumber = ""
			},
			message: "Please provide your easypaisa account number.",
		},
		{
			name: "missing paypal email",
			mutate: func(r *RegisterRequest) {
				r.PaypalEmail = ""
			},
			message: "Please provide your paypal email.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := &fakeUsers{byEmail: map[string]*UserInfo{}}
			store := &fakeStore{}
			svc := newTestService(t, users, store)

			req := validAuctioneerRequest()
			tc.mutate(&req)

			_, err := svc.Register(
				context.Background(),
				req,
				strings.NewReader("image"),
			)

			require.Error(t, err)
			var appErr *core.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.Equal(t, tc.message, appErr.Message)

			require.Empty(t, users.created, "no account may be created")
			require.Zero(t, store.uploads, "image must not be uploaded")
		})
	}
}

func TestRegisterBidderNeedsNoPaymentMethods(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*UserInfo{}}
	store := &fakeStore{}
	svc := newTestService(t, users, store)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "sana",
		Email:    "sana@example.test",
		Phone:    "03007654321",
		Password: "sup3r-secret",
		Address:  "Karachi",
		Role:     middleware.RoleBidder,
	}, strings.NewReader("image"))

	require.NoError(t, err)
	require.Equal(t, middleware.RoleBidder, resp.User.Role)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, 1, store.uploads)
	require.Len(t, users.created, 1)
}

func TestRegisterDuplicateEmailDestroysUpload(t *testing.T) {
	users := &fakeUsers{duplicate: true}
	store := &fakeStore{}
	svc := newTestService(t, users, store)

	_, err := svc.Register(
		context.Background(),
		validAuctioneerRequest(),
		strings.NewReader("image"),
	)

	require.ErrorIs(t, err, ErrEmailExists)
	require.Len(t, store.destroyed, 1, "orphaned upload must be removed")
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	hash, err := core.HashPassword("right-password")
	require.NoError(t, err)

	users := &fakeUsers{byEmail: map[string]*UserInfo{
		"known@example.test": {
			ID:           uuid.New().String(),
			Email:        "known@example.test",
			PasswordHash: hash,
			Role:         middleware.RoleBidder,
		},
	}}
	svc := newTestService(t, users, &fakeStore{})

	_, unknownErr := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.test",
		Password: "whatever-pass",
	})
	_, wrongErr := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.test",
		Password: "wrong-password",
	})

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}

func TestLoginIssuesVerifiableSessionToken(t *testing.T) {
	hash, err := core.HashPassword("right-password")
	require.NoError(t, err)

	userID := uuid.New().String()
	users := &fakeUsers{byEmail: map[string]*UserInfo{
		"known@example.test": {
			ID:           userID,
			Email:        "known@example.test",
			PasswordHash: hash,
			Role:         middleware.RoleSuperAdmin,
		},
	}}

	manager := newTestJWTManager(t)
	svc := NewService(manager, users, &fakeStore{}, nil, config.StorageConfig{})

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "known@example.test",
		Password: "right-password",
	})
	require.NoError(t, err)

	claims, err := manager.VerifySessionToken(context.Background(), resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, middleware.RoleSuperAdmin, claims.Role)
	require.NotEmpty(t, claims.JTI)
}

func TestVerifySessionTokenRejectsGarbage(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.VerifySessionToken(
		context.Background(),
		"not.a.token",
	)

	require.ErrorIs(t, err, core.ErrTokenInvalid)
}
