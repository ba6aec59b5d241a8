package response

import (
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

// RFQResponse is the workflow record as rendered to API clients.
type RFQResponse struct {
	ID               string   `json:"id"`
	RFQReference     string   `json:"rfq_reference,omitempty"`
	CustomerName     string   `json:"customer_name,omitempty"`
	CustomerEmail    string   `json:"customer_email,omitempty"`
	Subject          string   `json:"subject,omitempty"`
	Status           string   `json:"status"`
	ShippingMode     string   `json:"shipping_mode,omitempty"`
	Origin           string   `json:"origin,omitempty"`
	Destination      string   `json:"destination,omitempty"`
	IsDangerousGoods bool     `json:"is_dangerous_goods"`
	Urgency          string   `json:"urgency"`
	TotalWeightKG    *float64 `json:"total_weight_kg,omitempty"`

	RateID        string   `json:"rate_id,omitempty"`
	RateAmount    *float64 `json:"rate_amount,omitempty"`
	RateCurrency  string   `json:"rate_currency,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`

	OdooSaleOrderID     *int   `json:"odoo_sale_order_id,omitempty"`
	OdooQuotationNumber string `json:"odoo_quotation_number,omitempty"`

	AssignedAgent string `json:"assigned_agent,omitempty"`

	SLATargetHours int        `json:"sla_target_hours"`
	SLADeadlineAt  time.Time  `json:"sla_deadline_at"`
	SLABreached    bool       `json:"sla_breached"`
	SLABreachedAt  *time.Time `json:"sla_breached_at,omitempty"`

	ReceivedAt         time.Time  `json:"received_at"`
	ParsingCompletedAt *time.Time `json:"parsing_completed_at,omitempty"`
	RateFoundAt        *time.Time `json:"rate_found_at,omitempty"`
	QuoteDraftedAt     *time.Time `json:"quote_drafted_at,omitempty"`
	QuoteSentAt        *time.Time `json:"quote_sent_at,omitempty"`

	AllowedTransitions []string `json:"allowed_transitions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRFQ(r entities.RFQ) RFQResponse {
	allowed := r.Status.AllowedTransitions()
	transitions := make([]string, 0, len(allowed))
	for _, s := range allowed {
		transitions = append(transitions, string(s))
	}

	return RFQResponse{
		ID:               r.ID,
		RFQReference:     r.RFQReference,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		Subject:          r.Subject,
		Status:           string(r.Status),
		ShippingMode:     string(r.ShippingMode),
		Origin:           r.Origin,
		Destination:      r.Destination,
		IsDangerousGoods: r.IsDangerousGoods,
		Urgency:          string(r.Urgency),
		TotalWeightKG:    r.TotalWeightKG,

		RateID:        r.RateID,
		RateAmount:    r.RateAmount,
		RateCurrency:  r.RateCurrency,
		EstimatedCost: r.EstimatedCost,

		OdooSaleOrderID:     r.OdooSaleOrderID,
		OdooQuotationNumber: r.OdooQuotationNumber,

		AssignedAgent: r.AssignedAgent,

		SLATargetHours: r.SLATargetHours,
		SLADeadlineAt:  r.SLADeadlineAt,
		SLABreached:    r.SLABreached,
		SLABreachedAt:  r.SLABreachedAt,

		ReceivedAt:         r.ReceivedAt,
		ParsingCompletedAt: r.ParsingCompletedAt,
		RateFoundAt:        r.RateFoundAt,
		QuoteDraftedAt:     r.QuoteDraftedAt,
		QuoteSentAt:        r.QuoteSentAt,

		AllowedTransitions: transitions,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRFQs(rfqs []entities.RFQ) []RFQResponse {
	out := make([]RFQResponse, 0, len(rfqs))
	for _, r := range rfqs {
		out = append(out, FromRFQ(r))
	}
	return out
}

// AuditEntryResponse is one row of an RFQ's trail.
type AuditEntryResponse struct {
	Event     string    `json:"event"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RFQDetailResponse is the record plus its full audit trail.
type RFQDetailResponse struct {
	RFQResponse
	AuditLog []AuditEntryResponse `json:"audit_log"`
}

func FromRFQDetail(r entities.RFQ, trail []entities.AuditLogEntry) RFQDetailResponse {
	entries := make([]AuditEntryResponse, 0, len(trail))
	for _, e := range trail {
		entries = append(entries, AuditEntryResponse{
			Event:     e.Event,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Timestamp: e.Timestamp,
		})
	}
	return RFQDetailResponse{RFQResponse: FromRFQ(r), AuditLog: entries}
}

// UploadResponse reports the intake pipeline outcome.
type UploadResponse struct {
	RFQ     RFQResponse `json:"rfq"`
	Message string      `json:"message"`
}
