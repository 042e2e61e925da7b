package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VendorRepo implements ports.VendorRepository.
type VendorRepo struct {
	pool Pool
}

// NewVendorRepo creates a new VendorRepo.
func NewVendorRepo(pool Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

// GetByID fetches a vendor by its UUID.
func (r *VendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	query := `SELECT id, business_name, bank_name, bank_code, account_number_enc, account_name, recipient_code, updated_at
		FROM vendors WHERE id = $1`

	v := &domain.Vendor{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.BusinessName, &v.BankName, &v.BankCode,
		&v.AccountNumberEnc, &v.AccountName, &v.RecipientCode, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor by id: %w", err)
	}
	return v, nil
}

// SaveRecipientCode stores code unless the bank details changed since the
// vendor row was read.
func (r *VendorRepo) SaveRecipientCode(ctx context.Context, vendor *domain.Vendor, code string) (bool, error) {
	query := `UPDATE vendors SET recipient_code = $1, updated_at = NOW()
		WHERE id = $2 AND bank_code = $3 AND account_number_enc = $4`

	tag, err := r.pool.Exec(ctx, query, code, vendor.ID, vendor.BankCode, vendor.AccountNumberEnc)
	if err != nil {
		return false, fmt.Errorf("save recipient code: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateBankDetails replaces the bank details and drops the recipient code.
func (r *VendorRepo) UpdateBankDetails(ctx context.Context, vendor *domain.Vendor) (bool, error) {
	query := `UPDATE vendors
		SET bank_name = $1, bank_code = $2, account_number_enc = $3, account_name = $4,
		    recipient_code = NULL, updated_at = NOW()
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query,
		vendor.BankName, vendor.BankCode, vendor.AccountNumberEnc, vendor.AccountName, vendor.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update bank details: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
