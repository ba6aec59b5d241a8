package entities

import "time"

// RFQStatus represents the lifecycle of a request-for-quote.
//
// Domain notes:
//   - Statuses form a closed state machine; any transition not listed in
//     validTransitions is rejected, regardless of what the caller supplies.
//   - sent and cancelled are terminal.
type RFQStatus string

const (
	StatusReceived     RFQStatus = "received"
	StatusParsing      RFQStatus = "parsing"
	StatusRatesLookup  RFQStatus = "rates_lookup"
	StatusRatesPending RFQStatus = "rates_pending"
	StatusRatesFound   RFQStatus = "rates_found"
	StatusQuoteDraft   RFQStatus = "quote_draft"
	StatusQuoteReview  RFQStatus = "quote_review"
	StatusSent         RFQStatus = "sent"
	StatusCancelled    RFQStatus = "cancelled"
)

// Urgency drives the SLA target applied at intake.
type Urgency string

const (
	UrgencyStandard Urgency = "STANDARD"
	UrgencyUrgent   Urgency = "URGENT"
)

var validTransitions = map[RFQStatus][]RFQStatus{
	StatusReceived:     {StatusParsing},
	StatusParsing:      {StatusRatesLookup},
	StatusRatesLookup:  {StatusRatesFound, StatusRatesPending},
	StatusRatesPending: {StatusQuoteDraft},
	StatusRatesFound:   {StatusQuoteDraft},
	StatusQuoteDraft:   {StatusQuoteReview},
	StatusQuoteReview:  {StatusSent},
}

func (s RFQStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusParsing, StatusRatesLookup, StatusRatesPending,
		StatusRatesFound, StatusQuoteDraft, StatusQuoteReview, StatusSent, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s RFQStatus) IsTerminal() bool {
	return s == StatusSent || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is an enumerated transition.
// cancelled is reachable from every non-terminal status.
func (s RFQStatus) CanTransitionTo(next RFQStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s, cancel included.
func (s RFQStatus) AllowedTransitions() []RFQStatus {
	if s.IsTerminal() {
		return nil
	}
	out := make([]RFQStatus, 0, len(validTransitions[s])+1)
	out = append(out, validTransitions[s]...)
	return append(out, StatusCancelled)
}

// OpenStatuses are the statuses tracked against the SLA deadline.
func OpenStatuses() []RFQStatus {
	return []RFQStatus{
		StatusReceived, StatusParsing, StatusRatesLookup,
		StatusRatesPending, StatusRatesFound, StatusQuoteDraft, StatusQuoteReview,
	}
}

// RFQ is the request-for-quote workflow record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Version is an optimistic-concurrency counter checked on every
//     transition; a mismatch means a concurrent writer won the race.
//
// The record is created once at intake and mutated only through workflow
// transitions. It is never deleted: sent/cancelled RFQs stay for audit.
type RFQ struct {
	ID               string        `json:"id"`
	RFQReference     string        `json:"rfq_reference,omitempty"`
	CustomerName     string        `json:"customer_name,omitempty"`
	CustomerEmail    string        `json:"customer_email,omitempty"`
	Subject          string        `json:"subject,omitempty"`
	Status           RFQStatus     `json:"status"`
	ShippingMode     TransportMode `json:"shipping_mode,omitempty"`
	Origin           string        `json:"origin,omitempty"`
	Destination      string        `json:"destination,omitempty"`
	IsDangerousGoods bool          `json:"is_dangerous_goods"`
	Urgency          Urgency       `json:"urgency"`
	TotalWeightKG    *float64      `json:"total_weight_kg,omitempty"`

	RateID        string   `json:"rate_id,omitempty"`
	RateAmount    *float64 `json:"rate_amount,omitempty"`
	RateCurrency  string   `json:"rate_currency,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`

	OdooSaleOrderID     *int   `json:"odoo_sale_order_id,omitempty"`
	OdooQuotationNumber string `json:"odoo_quotation_number,omitempty"`

	EmailFilePath string `json:"email_file_path,omitempty"`
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

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"-"`
}

// IsOpen reports whether the RFQ still counts against its SLA.
func (r RFQ) IsOpen() bool {
	return !r.Status.IsTerminal()
}
