// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterRequest is populated from multipart form fields; the profile image
// file rides alongside it in the same request.
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=40"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Phone    string `json:"phone"    validate:"required,min=7,max=20"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Address  string `json:"address"  validate:"required,max=255"`
	Role     string `json:"role"     validate:"required,oneof=Bidder Auctioneer"`

	BankAccountName        string `json:"bankAccountName"        validate:"omitempty,max=100"`
	BankAccountNumber      string `json:"bankAccountNumber"      validate:"omitempty,max=34"`
	BankName               string `json:"bankName"               validate:"omitempty,max=100"`
	EasypaisaAccountNumber string `json:"easypaisaAccountNumber" validate:"omitempty,max=20"`
	PaypalEmail            string `json:"paypalEmail"            validate:"omitempty,email,max=255"`
}

type ProfileImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type BankTransfer struct {
	BankAccountNumber string `json:"bankAccountNumber"`
	BankAccountName   string `json:"bankAccountName"`
	BankName          string `json:"bankName"`
}

type Easypaisa struct {
	EasypaisaAccountNumber string `json:"easypaisaAccountNumber"`
}

type Paypal struct {
	PaypalEmail string `json:"paypalEmail"`
}

type PaymentMethods struct {
	BankTransfer BankTransfer `json:"bankTransfer"`
	Easypaisa    Easypaisa    `json:"easypaisa"`
	Paypal       Paypal       `json:"paypal"`
}

type UserResponse struct {
	ID               string         `json:"id"`
	UserName         string         `json:"userName"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	Role             string         `json:"role"`
	ProfileImage     ProfileImage   `json:"profileImage"`
	PaymentMethods   PaymentMethods `json:"paymentMethods"`
	MoneySpent       float64        `json:"moneySpent"`
	UnpaidCommission float64        `json:"unpaidCommission"`
	CreatedAt        time.Time      `json:"createdAt"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
