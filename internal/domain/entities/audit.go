package entities

import "time"

// Audit event names. One entry is written per state-affecting operation.
const (
	AuditEventCreated       = "created"
	AuditEventStatusChanged = "status_changed"
	AuditEventRateAssigned  = "rate_assigned"
	AuditEventAgentAssigned = "agent_assigned"
	AuditEventSLABreached   = "sla_breached"
)

// AuditLogEntry is an append-only record owned by its RFQ.
//
// Storage model (DynamoDB):
//   - PK: rfq_id
//   - SK: seq (monotonic per RFQ, assigned by the writer)
//
// Entries are write-once; the trail's order is the per-RFQ seq.
type AuditLogEntry struct {
	RFQID     string    `json:"rfq_id"`
	Seq       int64     `json:"-"`
	Event     string    `json:"event"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
