package interfaces

import (
	"context"
	"errors"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

// ErrVersionConflict reports that the stored record version no longer
// matches the version the caller read. The losing writer must re-read.
var ErrVersionConflict = errors.New("rfq version conflict")

// RFQFilter narrows List results; empty fields are ignored, supplied fields
// combine with logical AND.
type RFQFilter struct {
	Status  entities.RFQStatus
	Urgency entities.Urgency
}

// IRFQRepository abstracts DynamoDB persistence for RFQ workflow records.
//
// UpdateWithAudit commits the mutated record and its audit entries in one
// DynamoDB transaction, conditioned on the record's version. Both writes
// land or neither does; a version mismatch surfaces as ErrVersionConflict
// from the adapter so the workflow can report Conflict.
type IRFQRepository interface {
	Create(ctx context.Context, r entities.RFQ) (entities.RFQ, error)
	GetByID(ctx context.Context, id string) (entities.RFQ, error)
	List(ctx context.Context, f RFQFilter) ([]entities.RFQ, error)
	UpdateWithAudit(ctx context.Context, r entities.RFQ, entries []entities.AuditLogEntry) (entities.RFQ, error)
}

// IAuditLogRepository reads the append-only trail; writes go through
// IRFQRepository.UpdateWithAudit or Append (intake only).
type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditLogEntry) error
	ListByRFQ(ctx context.Context, rfqID string) ([]entities.AuditLogEntry, error)
}
