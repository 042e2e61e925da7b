package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-payments/internal/core/domain"
	"marketplace-payments/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_PayoutApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	admin := &domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	payoutID := uuid.NewString()

	done := make(chan struct{})
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionPayoutApprove, entry.Action)
			assert.Equal(t, "payout_request", entry.ResourceType)
			assert.Equal(t, payoutID, entry.ResourceID)
			assert.Equal(t, &admin.UserID, entry.ActorID)
			assert.Equal(t, "admin", entry.ActorRole)
			assert.Contains(t, entry.Details, `"status":200`)
			close(done)
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit, "/api/v1"))
	r.POST("/api/v1/payouts/:id/approve", func(c *gin.Context) {
		c.Set(CtxPrincipal, admin)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/payouts/"+payoutID+"/approve", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit not called")
	}
}

func TestAuditLog_ResourceFromContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	orderID := uuid.NewString()
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionPaymentInitiate, entry.Action)
		assert.Equal(t, orderID, entry.ResourceID)
		assert.Nil(t, entry.ActorID)
	})

	r := gin.New()
	r.Use(AuditLog(mockAudit, "/api/v1"))
	r.POST("/api/v1/payments/initialize", func(c *gin.Context) {
		c.Set(CtxAuditResourceID, orderID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/payments/initialize", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsReadsAndFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	// No expectations: Log must not be called.

	r := gin.New()
	r.Use(AuditLog(mockAudit, "/api/v1"))
	r.GET("/api/v1/payouts", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/v1/payouts", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })
	r.POST("/api/v1/payments/webhook", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/payouts", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/payouts", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	}
}

func TestLookupAuditTarget(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   domain.AuditAction
	}{
		{"POST", "/api/v1/payouts", domain.AuditActionPayoutRequest},
		{"POST", "/api/v1/payouts/:id/cancel", domain.AuditActionPayoutCancel},
		{"POST", "/api/v1/payouts/:id/reject", domain.AuditActionPayoutReject},
		{"POST", "/api/v1/payouts/transfer", domain.AuditActionPayoutTransfer},
		{"PUT", "/api/v1/vendor/bank-details", domain.AuditActionBankDetailsUpdate},
		{"GET", "/api/v1/payouts", ""},
		{"POST", "/payouts", ""},
	}

	for _, tt := range tests {
		target, ok := lookupAuditTarget(tt.method, tt.path, "/api/v1")
		assert.Equal(t, tt.want != "", ok, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.want, target.action, "%s %s", tt.method, tt.path)
	}
}
