// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/primebid/auction-api/internal/auth"
	"github.com/primebid/auction-api/internal/core"
	"github.com/primebid/auction-api/internal/middleware"
)

const leaderboardLimit = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	params auth.CreateUserParams,
) (*auth.UserInfo, error) {
	user := &User{
		ID:                     uuid.New().String(),
		UserName:               params.UserName,
		Email:                  strings.ToLower(params.Email),
		PasswordHash:           params.PasswordHash,
		Role:                   params.Role,
		Phone:                  params.Phone,
		Address:                params.Address,
		ProfileImagePublicID:   params.ProfileImagePublicID,
		ProfileImageURL:        params.ProfileImageURL,
		BankAccountName:        params.BankAccountName,
		BankAccountNumber:      params.BankAccountNumber,
		BankName:               params.BankName,
		EasypaisaAccountNumber: params.EasypaisaAccountNumber,
		PaypalEmail:            params.PaypalEmail,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

// CreateSuperAdmin provisions a review-desk account. Unlike registration it
// is JSON-only: the profile image arrives as a hosted URL reference and no
// payment methods are taken.
func (s *Service) CreateSuperAdmin(
	ctx context.Context,
	req CreateSuperAdminRequest,
) (*auth.UserResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("create super admin: %w", core.ErrDuplicateKey)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:              uuid.New().String(),
		UserName:        req.UserName,
		Email:           strings.ToLower(req.Email),
		PasswordHash:    passwordHash,
		Role:            middleware.RoleSuperAdmin,
		ProfileImageURL: req.ProfileImage,
		Phone:           req.Phone,
		Address:         req.Address,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Leaderboard ranks bidders by lifetime spend. Accounts that never won an
// auction are excluded rather than listed at zero.
func (s *Service) Leaderboard(
	ctx context.Context,
) ([]auth.UserResponse, error) {
	users, err := s.repo.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]auth.UserResponse, 0, len(users))
	for i := range users {
		entries = append(entries, toUserResponse(&users[i]))
	}

	return entries, nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:                     u.ID,
		UserName:               u.UserName,
		Email:                  u.Email,
		PasswordHash:           u.PasswordHash,
		Role:                   u.Role,
		Phone:                  u.Phone,
		Address:                u.Address,
		ProfileImagePublicID:   u.ProfileImagePublicID,
		ProfileImageURL:        u.ProfileImageURL,
		BankAccountName:        u.BankAccountName,
		BankAccountNumber:      u.BankAccountNumber,
		BankName:               u.BankName,
		EasypaisaAccountNumber: u.EasypaisaAccountNumber,
		PaypalEmail:            u.PaypalEmail,
		MoneySpent:             u.MoneySpent,
		UnpaidCommission:       u.UnpaidCommission,
		CreatedAt:              u.CreatedAt,
	}
}

func toUserResponse(u *User) auth.UserResponse {
	return auth.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
		ProfileImage: auth.ProfileImage{
			PublicID: u.ProfileImagePublicID,
			URL:      u.ProfileImageURL,
		},
		PaymentMethods: auth.PaymentMethods{
			BankTransfer: auth.BankTransfer{
				BankAccountNumber: u.BankAccountNumber,
				BankAccountName:   u.BankAccountName,
				BankName:          u.BankName,
			},
			Easypaisa: auth.Easypaisa{
				EasypaisaAccountNumber: u.EasypaisaAccountNumber,
			},
			Paypal: auth.Paypal{
				PaypalEmail: u.PaypalEmail,
			},
		},
		MoneySpent:       u.MoneySpent,
		UnpaidCommission: u.UnpaidCommission,
		CreatedAt:        u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
