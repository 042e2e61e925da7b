package memory

import (
	"context"

	"marketplace-payments/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	s *Store
}

// Audit returns the audit repository of the store.
func (s *Store) Audit() *AuditRepo {
	return &AuditRepo{s: s}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	defer r.s.acquire(nil)()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}
