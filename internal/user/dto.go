// AngelaMos | 2026
// dto.go

package user

import (
	"github.com/primebid/auction-api/internal/auth"
)

// CreateSuperAdminRequest carries the image as a URL reference rather than an
// upload; the review desk is provisioned from an already-hosted picture.
type CreateSuperAdminRequest struct {
	UserName     string `json:"userName"     validate:"required,min=3,max=40"`
	Email        string `json:"email"        validate:"required,email,max=255"`
	Password     string `json:"password"     validate:"required,min=8,max=128"`
	ProfileImage string `json:"profileImage" validate:"required,max=2048"`
	Phone        string `json:"phone"        validate:"omitempty,min=7,max=20"`
	Address      string `json:"address"      validate:"omitempty,max=255"`
}

type LeaderboardResponse struct {
	Leaderboard []auth.UserResponse `json:"leaderboard"`
}
