// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/primebid/auction-api/internal/config"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/middleware"
	"github.com/primebid/auction-api/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

// UserInfo is the account projection the auth flows operate on. It decouples
// this package from the user package's persistence model.
type UserInfo struct {
	ID                     string
	UserName               string
	Email                  string
	PasswordHash           string
	Role                   string
	Phone                  string
	Address                string
	ProfileImagePublicID   string
	ProfileImageURL        string
	BankAccountName        string
	BankAccountNumber      string
	BankName               string
	EasypaisaAccountNumber string
	PaypalEmail            string
	MoneySpent             float64
	UnpaidCommission       float64
	CreatedAt              time.Time
}

type CreateUserParams struct {
	UserName               string
	Email                  string
	PasswordHash           string
	Role                   string
	Phone                  string
	Address                string
	ProfileImagePublicID   string
	ProfileImageURL        string
	BankAccountName        string
	BankAccountNumber      string
	BankName               string
	EasypaisaAccountNumber string
	PaypalEmail            string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, params CreateUserParams) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	jwt           *JWTManager
	users         UserProvider
	store         storage.Store
	sessions      *core.Redis
	profileFolder string
}

func NewService(
	jwt *JWTManager,
	users UserProvider,
	store storage.Store,
	sessions *core.Redis,
	storageCfg config.StorageConfig,
) *Service {
	return &Service{
		jwt:           jwt,
		users:         users,
		store:         store,
		sessions:      sessions,
		profileFolder: storageCfg.ProfileFolder,
	}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	return s.createAuthResponse(user)
}

// Register validates the account details, including the payment methods an
// auctioneer must declare, before the profile image leaves the request body.
// A rejected registration therefore never leaves an orphaned upload behind.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	profileImage io.Reader,
) (*AuthResponse, error) {
	if req.Role == middleware.RoleAuctioneer {
		if req.BankAccountName == "" ||
			req.BankAccountNumber == "" ||
			req.BankName == "" {
			return nil, core.ValidationError(
				"Please provide your full bank details.",
			)
		}
		if req.EasypaisaAccountNumber == "" {
			return nil, core.ValidationError(
				"Please provide your easypaisa account number.",
			)
		}
		if req.PaypalEmail == "" {
			return nil, core.ValidationError(
				"Please provide your paypal email.",
			)
		}
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	asset, err := s.store.Upload(ctx, profileImage, s.profileFolder)
	if err != nil {
		return nil, core.UpstreamError(
			fmt.Errorf("upload profile image: %w", err),
		)
	}

	user, err := s.users.Create(ctx, CreateUserParams{
		UserName:               req.UserName,
		Email:                  req.Email,
		PasswordHash:           passwordHash,
		Role:                   req.Role,
		Phone:                  req.Phone,
		Address:                req.Address,
		ProfileImagePublicID:   asset.PublicID,
		ProfileImageURL:        asset.URL,
		BankAccountName:        req.BankAccountName,
		BankAccountNumber:      req.BankAccountNumber,
		BankName:               req.BankName,
		EasypaisaAccountNumber: req.EasypaisaAccountNumber,
		PaypalEmail:            req.PaypalEmail,
	})
	if err != nil {
		//nolint:errcheck // best-effort cleanup of the orphaned upload
		_ = s.store.Destroy(ctx, asset.PublicID)

		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createAuthResponse(user)
}

// Logout denylists the session's jti for its remaining lifetime. Tokens past
// expiry reject on their own, so nothing is stored for them.
func (s *Service) Logout(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.sessions.DenySession(ctx, jti, ttl)
}

// VerifyAccessToken satisfies the authenticator's verifier contract: the
// signature check runs first, then the jti is screened against the logout
// denylist.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifySessionToken(ctx, token)
	if err != nil {
		return nil, err
	}

	denied, err := s.sessions.SessionDenied(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if denied {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	session, err := s.jwt.CreateSessionToken(SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create session token: %w", err)
	}

	return &AuthResponse{
		User:      toUserResponse(user),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func toUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
		ProfileImage: ProfileImage{
			PublicID: u.ProfileImagePublicID,
			URL:      u.ProfileImageURL,
		},
		PaymentMethods: PaymentMethods{
			BankTransfer: BankTransfer{
				BankAccountNumber: u.BankAccountNumber,
				BankAccountName:   u.BankAccountName,
				BankName:          u.BankName,
			},
			Easypaisa: Easypaisa{
				EasypaisaAccountNumber: u.EasypaisaAccountNumber,
			},
			Paypal: Paypal{
				PaypalEmail: u.PaypalEmail,
			},
		},
		MoneySpent:       u.MoneySpent,
		UnpaidCommission: u.UnpaidCommission,
		CreatedAt:        u.CreatedAt,
	}
}

var _ middleware.TokenVerifier = (*Service)(nil)
