package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-payments/internal/adapter/http/middleware"
	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports"
	"marketplace-payments/internal/core/ports/mocks"
	"marketplace-payments/pkg/apperror"
	"marketplace-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, path string, body any, p *domain.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		raw = b
	default:
		raw, _ = json.Marshal(b)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	if p != nil {
		c.Set(middleware.CtxPrincipal, p)
	}
	return c, w
}

func vendorUser() (*domain.Principal, uuid.UUID) {
	vendorID := uuid.New()
	return &domain.Principal{UserID: uuid.New(), Role: domain.RoleVendor, VendorID: &vendorID}, vendorID
}

func adminUser() *domain.Principal {
	return &domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Payment handler ---

func TestWebhook_Acknowledges(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mocks.NewMockWebhookService(ctrl)
	h := NewPaymentHandler(nil, webhooks, nil, zerolog.Nop())

	raw := []byte(`{"event":"charge.success","data":{"reference":"ord_1"}}`)
	webhooks.EXPECT().Handle(gomock.Any(), raw, "abc123").Return(domain.WebhookDuplicate, nil)

	c, w := newContext(http.MethodPost, "/api/v1/payments/webhook", raw, nil)
	c.Request.Header.Set(HeaderPaystackSignature, "abc123")
	h.Webhook(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestWebhook_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	webhooks := mocks.NewMockWebhookService(ctrl)
	h := NewPaymentHandler(nil, webhooks, nil, zerolog.Nop())

	webhooks.EXPECT().Handle(gomock.Any(), gomock.Any(), "").Return(domain.WebhookOutcome(""), apperror.ErrInvalidSignature())

	c, w := newContext(http.MethodPost, "/api/v1/payments/webhook", []byte(`{}`), nil)
	h.Webhook(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", decodeError(t, w).ErrorCode)
}

func TestInitialize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(checkout, nil, nil, zerolog.Nop())

	customer := &domain.Principal{UserID: uuid.New(), Role: domain.RoleCustomer, Email: "ada@example.com"}
	orderID := uuid.New()
	checkout.EXPECT().Initiate(gomock.Any(), ports.InitiateRequest{
		OrderID: orderID,
		Payer:   ports.Payer{UserID: customer.UserID, Email: "ada@example.com"},
	}).Return(&domain.Checkout{AuthorizationURL: "https://checkout.paystack.com/x", AccessCode: "ac", Reference: "ord_x_1"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/payments/initialize", map[string]string{"order_id": orderID.String()}, customer)
	h.Initialize(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authorization_url":"https://checkout.paystack.com/x","reference":"ord_x_1"}`, w.Body.String())
	assert.Equal(t, orderID.String(), c.GetString(middleware.CtxAuditResourceID))
}

func TestInitialize_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockCheckoutService(ctrl), nil, nil, zerolog.Nop())

	customer := &domain.Principal{UserID: uuid.New(), Role: domain.RoleCustomer}
	c, w := newContext(http.MethodPost, "/api/v1/payments/initialize", map[string]string{"order_id": "not-a-uuid"}, customer)
	h.Initialize(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeError(t, w).ErrorCode)
}

func TestInitialize_PartialFailureCarriesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockCheckoutService(ctrl)
	h := NewPaymentHandler(checkout, nil, nil, zerolog.Nop())

	checkout.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(nil, apperror.PartialFailure(
		"Checkout created but not recorded",
		map[string]any{"reference": "ord_y_1", "authorization_url": "https://checkout.paystack.com/y"},
		errors.New("db down"),
	))

	customer := &domain.Principal{UserID: uuid.New(), Role: domain.RoleCustomer}
	c, w := newContext(http.MethodPost, "/api/v1/payments/initialize", map[string]string{"order_id": uuid.NewString()}, customer)
	h.Initialize(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "REC_001", body.ErrorCode)
	assert.Equal(t, "ord_y_1", body.Details["reference"])
}

func TestListBanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	banks := mocks.NewMockBankService(ctrl)
	h := NewPaymentHandler(nil, nil, banks, zerolog.Nop())

	banks.EXPECT().ListBanks(gomock.Any()).Return([]domain.Bank{{Name: "Access Bank", Code: "044"}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/payments/banks", nil, adminUser())
	h.ListBanks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"banks":[{"name":"Access Bank","code":"044"}]}`, w.Body.String())
}

func TestResolveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	banks := mocks.NewMockBankService(ctrl)
	h := NewPaymentHandler(nil, nil, banks, zerolog.Nop())
	p, _ := vendorUser()

	banks.EXPECT().ResolveAccount(gomock.Any(), "058", "0123456789").
		Return(&domain.ResolvedAccount{AccountName: "ADA STORES", AccountNumber: "0123456789"}, nil)
	c, w := newContext(http.MethodPost, "/api/v1/payments/resolve-account",
		map[string]string{"bank_code": "058", "account_number": "0123456789"}, p)
	h.ResolveAccount(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"account_name":"ADA STORES","account_number":"0123456789"}`, w.Body.String())

	c, w = newContext(http.MethodPost, "/api/v1/payments/resolve-account",
		map[string]string{"bank_code": "058", "account_number": "123"}, p)
	h.ResolveAccount(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payout handler ---

func TestCreatePayout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, vendorID := vendorUser()

	created := &domain.PayoutRequest{ID: uuid.New(), VendorID: vendorID, Amount: 5000, Status: domain.PayoutStatusPending, RequestedAt: time.Now()}
	payouts.EXPECT().Create(gomock.Any(), vendorID, int64(5000)).Return(created, nil)

	c, w := newContext(http.MethodPost, "/api/v1/payouts", map[string]int64{"amount": 5000}, p)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Payout domain.PayoutRequest `json:"payout"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, created.ID, body.Payout.ID)
	assert.Equal(t, domain.PayoutStatusPending, body.Payout.Status)
}

func TestCreatePayout_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, _ := vendorUser()

	payouts.EXPECT().Create(gomock.Any(), gomock.Any(), int64(9000)).
		Return(nil, apperror.ErrInsufficientFunds().WithDetails("available", int64(100)))

	c, w := newContext(http.MethodPost, "/api/v1/payouts", map[string]int64{"amount": 9000}, p)
	h.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "PAY_001", body.ErrorCode)
	assert.EqualValues(t, 100, body.Details["available"])
}

func TestCreatePayout_RejectsNonVendor(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPayoutHandler(mocks.NewMockPayoutService(ctrl), nil)

	c, w := newContext(http.MethodPost, "/api/v1/payouts", map[string]int64{"amount": 1}, adminUser())
	h.Create(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newContext(http.MethodPost, "/api/v1/payouts", map[string]int64{"amount": 1}, nil)
	h.Create(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePayout_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPayoutHandler(mocks.NewMockPayoutService(ctrl), nil)
	p, _ := vendorUser()

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{"amount":"10"}`, `{}`} {
		c, w := newContext(http.MethodPost, "/api/v1/payouts", []byte(body), p)
		h.Create(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestListPayouts_VendorScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, vendorID := vendorUser()

	payouts.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, params domain.PayoutListParams) ([]domain.PayoutRequest, error) {
			require.NotNil(t, params.VendorID)
			assert.Equal(t, vendorID, *params.VendorID)
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.PayoutStatusPending, *params.Status)
			assert.Equal(t, 5, params.Limit)
			return []domain.PayoutRequest{}, nil
		})

	// A vendor cannot widen the listing with vendor_id.
	c, w := newContext(http.MethodGet, "/api/v1/payouts?status=pending&limit=5&vendor_id="+uuid.NewString(), nil, p)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body response.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []any{}, body.Data)
}

func TestListPayouts_VendorWithoutFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, vendorID := vendorUser()

	payouts.EXPECT().ListForVendor(gomock.Any(), vendorID, 0).
		Return([]domain.PayoutRequest{{ID: uuid.New(), VendorID: vendorID}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/payouts", nil, p)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), vendorID.String())
}

func TestGetPayout_VendorOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, vendorID := vendorUser()
	own, other := uuid.New(), uuid.New()

	payouts.EXPECT().Get(gomock.Any(), own).Return(&domain.PayoutRequest{ID: own, VendorID: vendorID}, nil)
	payouts.EXPECT().Get(gomock.Any(), other).Return(&domain.PayoutRequest{ID: other, VendorID: uuid.New()}, nil).Times(2)

	c, w := newContext(http.MethodGet, "/", nil, p)
	c.Params = gin.Params{{Key: "id", Value: own.String()}}
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/", nil, p)
	c.Params = gin.Params{{Key: "id", Value: other.String()}}
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newContext(http.MethodGet, "/", nil, adminUser())
	c.Params = gin.Params{{Key: "id", Value: other.String()}}
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPayouts_AdminFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)

	payouts.EXPECT().List(gomock.Any(), domain.PayoutListParams{}).Return([]domain.PayoutRequest{{ID: uuid.New()}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/payouts", nil, adminUser())
	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/api/v1/payouts?status=settled", nil, adminUser())
	h.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprovePayout_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	admin := adminUser()
	id := uuid.New()

	payouts.EXPECT().Approve(gomock.Any(), id, admin.UserID).Return(nil, apperror.Conflict("Payout request is not pending"))

	c, w := newContext(http.MethodPost, "/api/v1/payouts/"+id.String()+"/approve", nil, admin)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "STA_001", decodeError(t, w).ErrorCode)
}

func TestApprovePayout_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPayoutHandler(mocks.NewMockPayoutService(ctrl), nil)

	c, w := newContext(http.MethodPost, "/api/v1/payouts/nope/approve", nil, adminUser())
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectPayout_SanitizesReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	admin := adminUser()
	id := uuid.New()

	payouts.EXPECT().Reject(gomock.Any(), id, admin.UserID, "bank &lt;mismatch&gt;").
		Return(&domain.PayoutRequest{ID: id, Status: domain.PayoutStatusRejected}, nil)

	c, w := newContext(http.MethodPost, "/", map[string]string{"reason": "  bank <mismatch> "}, admin)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	payouts := mocks.NewMockPayoutService(ctrl)
	h := NewPayoutHandler(payouts, nil)
	p, vendorID := vendorUser()
	id := uuid.New()

	payouts.EXPECT().Cancel(gomock.Any(), id, vendorID, p.UserID).
		Return(&domain.PayoutRequest{ID: id, Status: domain.PayoutStatusCancelled}, nil)

	c, w := newContext(http.MethodPost, "/", nil, p)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mocks.NewMockTransferService(ctrl)
	h := NewPayoutHandler(nil, transfers)
	admin := adminUser()
	id := uuid.New()

	transfers.EXPECT().Execute(gomock.Any(), ports.TransferRequest{PayoutRequestID: id, Actor: admin.UserID}).
		Return(&domain.TransferResult{TransferCode: "TRF_1", Reference: "payout_1", Status: "pending"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/payouts/transfer", map[string]string{"request_id": id.String()}, admin)
	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"transfer":{"transfer_code":"TRF_1","reference":"payout_1","status":"pending"}}`, w.Body.String())
}

func TestTransfer_AwaitingOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mocks.NewMockTransferService(ctrl)
	h := NewPayoutHandler(nil, transfers)

	transfers.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.TransferResult{TransferCode: "TRF_2", Reference: "payout_2", Status: domain.TransferStatusOTP}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/payouts/transfer", map[string]string{"request_id": uuid.NewString()}, adminUser())
	h.Transfer(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ok":false,"transfer":{"transfer_code":"TRF_2","reference":"payout_2","status":"otp"}}`, w.Body.String())
}

func TestTransfer_ProcessorRejectionSurfacesRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mocks.NewMockTransferService(ctrl)
	h := NewPayoutHandler(nil, transfers)

	raw := []byte(`{"status":false,"message":"Insufficient balance"}`)
	transfers.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ExternalProcessor("Insufficient balance", raw, errors.New("400")))

	c, w := newContext(http.MethodPost, "/api/v1/payouts/transfer", map[string]string{"request_id": uuid.NewString()}, adminUser())
	h.Transfer(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "EXT_001", body.ErrorCode)
	assert.Equal(t, map[string]any{"status": false, "message": "Insufficient balance"}, body.Raw)
}

func TestReconcileAndRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	transfers := mocks.NewMockTransferService(ctrl)
	h := NewPayoutHandler(nil, transfers)
	admin := adminUser()
	id := uuid.New()

	transfers.EXPECT().Reconcile(gomock.Any(), id, "payout_abc_1", admin.UserID).
		Return(&domain.PayoutRequest{ID: id, Status: domain.PayoutStatusPaid}, nil)
	c, w := newContext(http.MethodPost, "/", map[string]string{"transfer_reference": "payout_abc_1"}, admin)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Reconcile(c)
	assert.Equal(t, http.StatusOK, w.Code)

	transfers.EXPECT().ReleaseClaim(gomock.Any(), id, admin.UserID).Return(nil)
	c, w = newContext(http.MethodPost, "/", nil, admin)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Release(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

// --- Wallet & vendor handlers ---

func TestGetWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(ledger)
	p, vendorID := vendorUser()

	ledger.EXPECT().Wallet(gomock.Any(), vendorID).Return(&domain.WalletSummary{VendorID: vendorID, Balance: 9000, Outstanding: 3000, Available: 6000}, nil)
	ledger.EXPECT().Statement(gomock.Any(), vendorID, 5).Return([]domain.LedgerTransaction{}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/wallet?limit=5", nil, p)
	h.GetWallet(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":9000,"outstanding":3000,"available":6000,"transactions":[]}`, w.Body.String())
}

func TestGetWallet_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockLedgerService(ctrl))
	p, _ := vendorUser()

	c, w := newContext(http.MethodGet, "/api/v1/wallet?limit=abc", nil, p)
	h.GetWallet(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerService(ctrl)
	h := NewWalletHandler(ledger)
	vendorID := uuid.New()

	ledger.EXPECT().Verify(gomock.Any(), vendorID).Return(&domain.LedgerVerification{VendorID: vendorID, Cached: 10, Computed: 10}, nil)

	c, w := newContext(http.MethodGet, "/", nil, adminUser())
	c.Params = gin.Params{{Key: "id", Value: vendorID.String()}}
	h.VerifyLedger(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"drift":0`)
}

func TestUpdateBankDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)
	p, vendorID := vendorUser()

	vendors.EXPECT().UpdateBankDetails(gomock.Any(), vendorID, domain.BankDetails{
		BankCode:      "058",
		BankName:      "GTBank",
		AccountNumber: "0123456789",
		AccountName:   "O'Brien Foods",
	}).Return(&domain.BankDetailsView{BankName: "GTBank", BankCode: "058", AccountNumber: "******6789", AccountName: "O'Brien Foods"}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/vendor/bank-details", map[string]string{
		"bank_code":      "058",
		"bank_name":      " GTBank ",
		"account_number": "0123456789",
		"account_name":   "O'Brien Foods",
	}, p)
	h.UpdateBankDetails(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "******6789")
}

func TestGetBankDetails_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	vendors := mocks.NewMockVendorService(ctrl)
	h := NewVendorHandler(vendors)
	p, vendorID := vendorUser()

	vendors.EXPECT().BankDetails(gomock.Any(), vendorID).Return(nil, apperror.ErrNotFound("Vendor"))

	c, w := newContext(http.MethodGet, "/api/v1/vendor/bank-details", nil, p)
	h.GetBankDetails(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Health ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	rd := mocks.NewMockHealthChecker(ctrl)

	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	rd.EXPECT().Name().Return("redis").AnyTimes()
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	c, w := newContext(http.MethodGet, "/health", nil, nil)
	HealthCheck(pg, rd)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body struct {
		Status       string                       `json:"status"`
		Dependencies map[string]map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Dependencies["postgresql"]["status"])
	assert.Equal(t, "connection refused", body.Dependencies["redis"]["error"])
}
