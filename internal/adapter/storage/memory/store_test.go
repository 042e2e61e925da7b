package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.DBTransactor     = (*Store)(nil)
	_ ports.OrderRepository  = (*OrderRepo)(nil)
	_ ports.LedgerRepository = (*LedgerRepo)(nil)
	_ ports.PayoutRepository = (*PayoutRepo)(nil)
	_ ports.VendorRepository = (*VendorRepo)(nil)
	_ ports.AuditRepository  = (*AuditRepo)(nil)
)

func TestTx_RollbackUndoesWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	vendorID := uuid.New()
	orderID := uuid.New()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	inserted, err := s.Ledger().InsertCredit(ctx, tx, &domain.LedgerTransaction{
		ID: uuid.New(), VendorID: vendorID, OrderID: &orderID, Amount: 500, Kind: domain.LedgerKindOrderCredit,
	})
	require.NoError(t, err)
	assert.True(t, inserted)
	balance, err := s.Ledger().ApplyBalanceDelta(ctx, tx, vendorID, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	require.NoError(t, tx.Rollback(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)

	w, err := s.Ledger().GetWallet(ctx, vendorID)
	require.NoError(t, err)
	assert.Nil(t, w)
	credit, err := s.Ledger().GetCreditByOrderID(ctx, nil, orderID)
	require.NoError(t, err)
	assert.Nil(t, credit)
}

func TestTx_CommitKeepsWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	vendorID := uuid.New()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	_, err = s.Ledger().ApplyBalanceDelta(ctx, tx, vendorID, 700)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)

	w, err := s.Ledger().GetWallet(ctx, vendorID)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, int64(700), w.Balance)
}

func TestLedger_UniquePerOrderAndPayout(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	vendorID := uuid.New()
	orderID := uuid.New()
	payoutID := uuid.New()

	first, err := s.Ledger().InsertCredit(ctx, nil, &domain.LedgerTransaction{ID: uuid.New(), VendorID: vendorID, OrderID: &orderID, Amount: 1, Kind: domain.LedgerKindOrderCredit})
	require.NoError(t, err)
	second, err := s.Ledger().InsertCredit(ctx, nil, &domain.LedgerTransaction{ID: uuid.New(), VendorID: vendorID, OrderID: &orderID, Amount: 1, Kind: domain.LedgerKindOrderCredit})
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)

	require.NoError(t, s.Ledger().InsertDebit(ctx, nil, &domain.LedgerTransaction{ID: uuid.New(), VendorID: vendorID, PayoutRequestID: &payoutID, Amount: 1, Kind: domain.LedgerKindPayoutDebit}))
	err = s.Ledger().InsertDebit(ctx, nil, &domain.LedgerTransaction{ID: uuid.New(), VendorID: vendorID, PayoutRequestID: &payoutID, Amount: 1, Kind: domain.LedgerKindPayoutDebit})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	totals, err := s.Ledger().SumByVendor(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, &domain.LedgerTotals{Credits: 1, Debits: 1}, totals)
}

func TestOrders_ReferenceLookupAndMarkPaid(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	order := domain.Order{
		ID: uuid.New(), VendorID: uuid.New(), CustomerID: uuid.New(),
		TotalAmount: decimal.NewFromInt(50), Status: domain.OrderStatusAwaitingPayment,
		PaymentStatus: domain.PaymentStatusAwaiting,
	}
	s.PutOrder(order)

	require.NoError(t, s.Orders().SavePaymentReference(ctx, nil, &domain.PaymentAttempt{Reference: "ref-1", OrderID: order.ID}))
	require.NoError(t, s.Orders().SavePaymentReference(ctx, nil, &domain.PaymentAttempt{Reference: "ref-2", OrderID: order.ID}))

	byOld, err := s.Orders().GetByPaymentReference(ctx, "ref-1")
	require.NoError(t, err)
	require.NotNil(t, byOld)
	assert.Equal(t, order.ID, byOld.ID)
	assert.Equal(t, "ref-2", *byOld.PaymentReference)

	missing, err := s.Orders().GetByPaymentReference(ctx, "ref-x")
	require.NoError(t, err)
	assert.Nil(t, missing)

	paidAt := time.Now().UTC()
	changed, err := s.Orders().MarkPaid(ctx, nil, order.ID, paidAt)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = s.Orders().MarkPaid(ctx, nil, order.ID, paidAt)
	require.NoError(t, err)
	assert.False(t, changed)

	got, _ := s.Orders().GetByID(ctx, order.ID)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
}

func TestPayouts_TransitionAndClaim(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Payouts()
	p := &domain.PayoutRequest{ID: uuid.New(), VendorID: uuid.New(), Amount: 100, Status: domain.PayoutStatusApproved, RequestedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, nil, p))

	claimed, err := repo.ClaimTransfer(ctx, p.ID, "attempt-1", time.Now())
	require.NoError(t, err)
	assert.True(t, claimed)
	claimed, err = repo.ClaimTransfer(ctx, p.ID, "attempt-2", time.Now())
	require.NoError(t, err)
	assert.False(t, claimed)

	reason := "duplicate"
	rejected, err := repo.Transition(ctx, nil, domain.PayoutTransition{
		ID: p.ID, From: []domain.PayoutStatus{domain.PayoutStatusApproved}, To: domain.PayoutStatusRejected,
		Actor: uuid.New(), At: time.Now(), Reason: &reason, RequireUnclaimed: true,
	})
	require.NoError(t, err)
	assert.Nil(t, rejected, "claimed request must not be rejected")

	released, err := repo.ReleaseTransfer(ctx, p.ID, "attempt-other")
	require.NoError(t, err)
	assert.False(t, released)
	released, err = repo.ReleaseTransfer(ctx, p.ID, "attempt-1")
	require.NoError(t, err)
	assert.True(t, released)

	rejected, err = repo.Transition(ctx, nil, domain.PayoutTransition{
		ID: p.ID, From: []domain.PayoutStatus{domain.PayoutStatusApproved}, To: domain.PayoutStatusRejected,
		Actor: uuid.New(), At: time.Now(), Reason: &reason, RequireUnclaimed: true,
	})
	require.NoError(t, err)
	require.NotNil(t, rejected)
	assert.Equal(t, domain.PayoutStatusRejected, rejected.Status)
	assert.Equal(t, "duplicate", *rejected.RejectionReason)
	assert.NotNil(t, rejected.ReviewedAt)
}

func TestPayouts_ConcurrentClaimHasOneWinner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	p := &domain.PayoutRequest{ID: uuid.New(), VendorID: uuid.New(), Amount: 100, Status: domain.PayoutStatusApproved}
	require.NoError(t, s.Payouts().Create(ctx, nil, p))

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := s.Payouts().ClaimTransfer(ctx, p.ID, domain.NewPayoutReference(p.ID, time.Unix(0, int64(i))), time.Now())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestPayouts_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	vendorID := uuid.New()
	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Payouts().Create(ctx, nil, &domain.PayoutRequest{
			ID: uuid.New(), VendorID: vendorID, Amount: int64(i + 1), Status: domain.PayoutStatusPending,
			RequestedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.Payouts().Create(ctx, nil, &domain.PayoutRequest{ID: uuid.New(), VendorID: uuid.New(), Amount: 9, Status: domain.PayoutStatusPaid, RequestedAt: base}))

	list, err := s.Payouts().List(ctx, domain.PayoutListParams{VendorID: &vendorID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].Amount)
	assert.Equal(t, int64(2), list[1].Amount)

	paid := domain.PayoutStatusPaid
	list, err = s.Payouts().List(ctx, domain.PayoutListParams{Status: &paid})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	sum, err := s.Payouts().SumOutstanding(ctx, nil, vendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)
}

func TestVendors_RecipientCodeIsConditional(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	v := domain.Vendor{ID: uuid.New(), BankCode: "058", AccountNumberEnc: "enc-1", AccountName: "Ada"}
	s.PutVendor(v)

	loaded, _ := s.Vendors().GetByID(ctx, v.ID)

	ok, err := s.Vendors().UpdateBankDetails(ctx, &domain.Vendor{ID: v.ID, BankCode: "044", AccountNumberEnc: "enc-2", AccountName: "Ada"})
	require.NoError(t, err)
	assert.True(t, ok)

	saved, err := s.Vendors().SaveRecipientCode(ctx, loaded, "RCP_stale")
	require.NoError(t, err)
	assert.False(t, saved, "recipient created from old details must not be stored")

	current, _ := s.Vendors().GetByID(ctx, v.ID)
	saved, err = s.Vendors().SaveRecipientCode(ctx, current, "RCP_fresh")
	require.NoError(t, err)
	assert.True(t, saved)

	current, _ = s.Vendors().GetByID(ctx, v.ID)
	assert.Equal(t, "RCP_fresh", *current.RecipientCode)

	ok, err = s.Vendors().UpdateBankDetails(ctx, &domain.Vendor{ID: uuid.New()})
	require.NoError(t, err)
	assert.False(t, ok)
}
