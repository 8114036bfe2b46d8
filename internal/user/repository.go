// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/primebid/auction-api/internal/core"
)

type MonthlyCount struct {
	Month int `db:"month"`
	Count int `db:"count"`
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Leaderboard(ctx context.Context, limit int) ([]User, error)
	MonthlyRegistrations(
		ctx context.Context,
		role string,
		year int,
	) ([]MonthlyCount, error)
	AddMoneySpent(ctx context.Context, id string, amount float64) error
	AddUnpaidCommission(ctx context.Context, id string, amount float64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, user_name, email, password_hash, role, phone,
	address, profile_image_public_id, profile_image_url,
	bank_account_name, bank_account_number, bank_name,
	easypaisa_account_number, paypal_email,
	money_spent, unpaid_commission, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, user_name, email, password_hash, role, phone, address,
			profile_image_public_id, profile_image_url,
			bank_account_name, bank_account_number, bank_name,
			easypaisa_account_number, paypal_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.UserName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Phone,
		user.Address,
		user.ProfileImagePublicID,
		user.ProfileImageURL,
		user.BankAccountName,
		user.BankAccountNumber,
		user.BankName,
		user.EasypaisaAccountNumber,
		user.PaypalEmail,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Leaderboard(
	ctx context.Context,
	limit int,
) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE money_spent > 0
		ORDER BY money_spent DESC
		LIMIT $1`, userColumns)

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, limit); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	return users, nil
}

func (r *repository) MonthlyRegistrations(
	ctx context.Context,
	role string,
	year int,
) ([]MonthlyCount, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month,
		       COUNT(*)::int AS count
		FROM users
		WHERE role = $1
		  AND EXTRACT(YEAR FROM created_at)::int = $2
		GROUP BY month
		ORDER BY month`

	var counts []MonthlyCount
	if err := r.db.SelectContext(ctx, &counts, query, role, year); err != nil {
		return nil, fmt.Errorf("monthly registrations: %w", err)
	}

	return counts, nil
}

func (r *repository) AddMoneySpent(
	ctx context.Context,
	id string,
	amount float64,
) error {
	query := `
		UPDATE users
		SET money_spent = money_spent + $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("add money spent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("add money spent: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("add money spent: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) AddUnpaidCommission(
	ctx context.Context,
	id string,
	amount float64,
) error {
	query := `
		UPDATE users
		SET unpaid_commission = unpaid_commission + $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("add unpaid commission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("add unpaid commission: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("add unpaid commission: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
