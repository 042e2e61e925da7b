package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPayoutRequest     AuditAction = "PAYOUT_REQUEST"
	AuditActionPayoutCancel      AuditAction = "PAYOUT_CANCEL"
	AuditActionPayoutApprove     AuditAction = "PAYOUT_APPROVE"
	AuditActionPayoutReject      AuditAction = "PAYOUT_REJECT"
	AuditActionPayoutTransfer    AuditAction = "PAYOUT_TRANSFER"
	AuditActionPayoutReconcile   AuditAction = "PAYOUT_RECONCILE"
	AuditActionPayoutRelease     AuditAction = "PAYOUT_RELEASE"
	AuditActionPaymentInitiate   AuditAction = "PAYMENT_INITIALIZE"
	AuditActionBankDetailsUpdate AuditAction = "BANK_DETAILS_UPDATE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	ActorRole    string      `json:"actor_role,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
