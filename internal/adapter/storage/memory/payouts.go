package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	s *Store
}

// Payouts returns the payout repository of the store.
func (s *Store) Payouts() *PayoutRepo {
	return &PayoutRepo{s: s}
}

func (r *PayoutRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PayoutRequest) error {
	defer r.s.acquire(tx)()
	if _, exists := r.s.payouts[p.ID]; exists {
		return fmt.Errorf("create payout request: %w", domain.ErrDuplicateEntry)
	}
	r.s.payouts[p.ID] = clonePayout(p)
	r.s.onRollback(tx, func() { delete(r.s.payouts, p.ID) })
	return nil
}

func (r *PayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error) {
	defer r.s.acquire(nil)()
	p, ok := r.s.payouts[id]
	if !ok {
		return nil, nil
	}
	return clonePayout(p), nil
}

func (r *PayoutRepo) List(ctx context.Context, params domain.PayoutListParams) ([]domain.PayoutRequest, error) {
	defer r.s.acquire(nil)()
	var out []domain.PayoutRequest
	for _, p := range r.s.payouts {
		if params.VendorID != nil && p.VendorID != *params.VendorID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (r *PayoutRepo) SumOutstanding(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (int64, error) {
	defer r.s.acquire(tx)()
	var sum int64
	for _, p := range r.s.payouts {
		if p.VendorID == vendorID && (p.Status == domain.PayoutStatusPending || p.Status == domain.PayoutStatusApproved) {
			sum += p.Amount
		}
	}
	return sum, nil
}

func (r *PayoutRepo) Transition(ctx context.Context, tx pgx.Tx, t domain.PayoutTransition) (*domain.PayoutRequest, error) {
	defer r.s.acquire(tx)()
	p, ok := r.s.payouts[t.ID]
	if !ok || !statusIn(p.Status, t.From) {
		return nil, nil
	}
	if t.RequireUnclaimed && p.TransferAttempt != nil {
		return nil, nil
	}

	prev := *p
	at := t.At
	actor := t.Actor
	p.Status = t.To
	p.ReviewedAt = &at
	p.ReviewedBy = &actor
	if t.Reason != nil {
		p.RejectionReason = t.Reason
	}
	if t.TransferReference != nil {
		p.TransferReference = t.TransferReference
	}

	r.s.onRollback(tx, func() { *p = prev })
	return clonePayout(p), nil
}

func (r *PayoutRepo) ClaimTransfer(ctx context.Context, id uuid.UUID, attemptRef string, at time.Time) (bool, error) {
	defer r.s.acquire(nil)()
	p, ok := r.s.payouts[id]
	if !ok || p.Status != domain.PayoutStatusApproved || p.TransferAttempt != nil {
		return false, nil
	}
	ref := attemptRef
	claimedAt := at
	p.TransferAttempt = &ref
	p.TransferClaimedAt = &claimedAt
	return true, nil
}

func (r *PayoutRepo) ReleaseTransfer(ctx context.Context, id uuid.UUID, attemptRef string) (bool, error) {
	defer r.s.acquire(nil)()
	p, ok := r.s.payouts[id]
	if !ok || p.Status != domain.PayoutStatusApproved || p.TransferAttempt == nil {
		return false, nil
	}
	if attemptRef != "" && *p.TransferAttempt != attemptRef {
		return false, nil
	}
	p.TransferAttempt = nil
	p.TransferClaimedAt = nil
	return true, nil
}

func statusIn(s domain.PayoutStatus, set []domain.PayoutStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
