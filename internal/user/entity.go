// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/primebid/auction-api/internal/middleware"
)

type User struct {
	ID                     string    `db:"id"`
	UserName               string    `db:"user_name"`
	Email                  string    `db:"email"`
	PasswordHash           string    `db:"password_hash"`
	Role                   string    `db:"role"`
	Phone                  string    `db:"phone"`
	Address                string    `db:"address"`
	ProfileImagePublicID   string    `db:"profile_image_public_id"`
	ProfileImageURL        string    `db:"profile_image_url"`
	BankAccountName        string    `db:"bank_account_name"`
	BankAccountNumber      string    `db:"bank_account_number"`
	BankName               string    `db:"bank_name"`
	EasypaisaAccountNumber string    `db:"easypaisa_account_number"`
	PaypalEmail            string    `db:"paypal_email"`
	MoneySpent             float64   `db:"money_spent"`
	UnpaidCommission       float64   `db:"unpaid_commission"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == middleware.RoleSuperAdmin
}

func (u *User) IsAuctioneer() bool {
	return u.Role == middleware.RoleAuctioneer
}
