package memory

import (
	"context"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
)

// VendorRepo implements ports.VendorRepository.
type VendorRepo struct {
	s *Store
}

// Vendors returns the vendor repository of the store.
func (s *Store) Vendors() *VendorRepo {
	return &VendorRepo{s: s}
}

func (r *VendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	defer r.s.acquire(nil)()
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	return cloneVendor(v), nil
}

func (r *VendorRepo) SaveRecipientCode(ctx context.Context, vendor *domain.Vendor, code string) (bool, error) {
	defer r.s.acquire(nil)()
	v, ok := r.s.vendors[vendor.ID]
	if !ok || v.BankCode != vendor.BankCode || v.AccountNumberEnc != vendor.AccountNumberEnc {
		return false, nil
	}
	c := code
	v.RecipientCode = &c
	v.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *VendorRepo) UpdateBankDetails(ctx context.Context, vendor *domain.Vendor) (bool, error) {
	defer r.s.acquire(nil)()
	v, ok := r.s.vendors[vendor.ID]
	if !ok {
		return false, nil
	}
	v.BankName = vendor.BankName
	v.BankCode = vendor.BankCode
	v.AccountNumberEnc = vendor.AccountNumberEnc
	v.AccountName = vendor.AccountName
	v.RecipientCode = nil
	v.UpdatedAt = time.Now().UTC()
	return true, nil
}
