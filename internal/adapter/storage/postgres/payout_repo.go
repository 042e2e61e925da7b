package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const payoutColumns = `id, vendor_id, amount, status, requested_at, reviewed_at, reviewed_by,
	rejection_reason, transfer_reference, transfer_attempt, transfer_claimed_at`

// PayoutRepo implements ports.PayoutRepository. Every status change is a
// single conditional UPDATE so concurrent callers cannot both win.
type PayoutRepo struct {
	pool Pool
}

// NewPayoutRepo creates a new PayoutRepo.
func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

// Create inserts a new payout request.
func (r *PayoutRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PayoutRequest) error {
	query := `INSERT INTO payout_requests (id, vendor_id, amount, status, requested_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := on(r.pool, tx).Exec(ctx, query, p.ID, p.VendorID, p.Amount, string(p.Status), p.RequestedAt)
	if err != nil {
		return fmt.Errorf("insert payout request: %w", err)
	}
	return nil
}

// GetByID fetches a payout request by its UUID.
func (r *PayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error) {
	query := `SELECT ` + payoutColumns + ` FROM payout_requests WHERE id = $1`

	p, err := scanPayout(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout request: %w", err)
	}
	return p, nil
}

// List returns payout requests newest first with optional filters.
func (r *PayoutRepo) List(ctx context.Context, params domain.PayoutListParams) ([]domain.PayoutRequest, error) {
	var (
		where []string
		args  []any
	)
	if params.VendorID != nil {
		args = append(args, *params.VendorID)
		where = append(where, fmt.Sprintf("vendor_id = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + payoutColumns + ` FROM payout_requests`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY requested_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payout requests: %w", err)
	}
	defer rows.Close()

	var out []domain.PayoutRequest
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payout request: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout requests: %w", err)
	}
	return out, nil
}

// SumOutstanding totals the vendor's pending and approved requests.
func (r *PayoutRepo) SumOutstanding(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payout_requests
		WHERE vendor_id = $1 AND status = ANY($2)`

	var sum int64
	if err := on(r.pool, tx).QueryRow(ctx, query, vendorID, statusStrings(domain.OutstandingPayoutStatuses)).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum outstanding payouts: %w", err)
	}
	return sum, nil
}

// Transition applies t if the row is still in one of t.From.
func (r *PayoutRepo) Transition(ctx context.Context, tx pgx.Tx, t domain.PayoutTransition) (*domain.PayoutRequest, error) {
	query := `UPDATE payout_requests
		SET status = $1,
		    reviewed_at = $2,
		    reviewed_by = $3,
		    rejection_reason = COALESCE($4, rejection_reason),
		    transfer_reference = COALESCE($5, transfer_reference)
		WHERE id = $6 AND status = ANY($7)`
	if t.RequireUnclaimed {
		query += ` AND transfer_attempt IS NULL`
	}
	query += ` RETURNING ` + payoutColumns

	p, err := scanPayout(on(r.pool, tx).QueryRow(ctx, query,
		string(t.To), t.At, t.Actor, t.Reason, t.TransferReference, t.ID, statusStrings(t.From),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("transition payout request: %w", err)
	}
	return p, nil
}

// ClaimTransfer stamps attemptRef on an approved request no run holds.
func (r *PayoutRepo) ClaimTransfer(ctx context.Context, id uuid.UUID, attemptRef string, at time.Time) (bool, error) {
	query := `UPDATE payout_requests SET transfer_attempt = $1, transfer_claimed_at = $2
		WHERE id = $3 AND status = 'approved' AND transfer_attempt IS NULL`

	tag, err := r.pool.Exec(ctx, query, attemptRef, at, id)
	if err != nil {
		return false, fmt.Errorf("claim payout transfer: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseTransfer clears the claim of an approved request.
func (r *PayoutRepo) ReleaseTransfer(ctx context.Context, id uuid.UUID, attemptRef string) (bool, error) {
	query := `UPDATE payout_requests SET transfer_attempt = NULL, transfer_claimed_at = NULL
		WHERE id = $1 AND status = 'approved' AND transfer_attempt IS NOT NULL
		  AND ($2 = '' OR transfer_attempt = $2)`

	tag, err := r.pool.Exec(ctx, query, id, attemptRef)
	if err != nil {
		return false, fmt.Errorf("release payout transfer: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanPayout(row pgx.Row) (*domain.PayoutRequest, error) {
	p := &domain.PayoutRequest{}
	var status string
	err := row.Scan(
		&p.ID, &p.VendorID, &p.Amount, &status, &p.RequestedAt, &p.ReviewedAt, &p.ReviewedBy,
		&p.RejectionReason, &p.TransferReference, &p.TransferAttempt, &p.TransferClaimedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.PayoutStatus(status)
	return p, nil
}

func statusStrings(set []domain.PayoutStatus) []string {
	out := make([]string, len(set))
	for i, s := range set {
		out[i] = string(s)
	}
	return out
}
