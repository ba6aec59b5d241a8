package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/sla"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

var (
	ErrRFQNotFound       = errors.New("rfq not found")
	ErrInvalidRFQID      = errors.New("invalid rfq id")
	ErrInvalidAgent      = errors.New("invalid agent")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrRFQConflict       = errors.New("concurrent rfq transition")
)

// WorkflowConfig carries the tunables of the lifecycle engine.
type WorkflowConfig struct {
	// SLA targets per urgency, in hours.
	SLAStandardHours int
	SLAUrgentHours   int
	// AcceptConfidence gates rates_lookup -> rates_found auto-advance.
	AcceptConfidence float64
	// StoreTimeout bounds a single repository call.
	StoreTimeout time.Duration
}

func DefaultWorkflowConfig() WorkflowConfig {
	return WorkflowConfig{
		SLAStandardHours: 24,
		SLAUrgentHours:   4,
		AcceptConfidence: AcceptConfidence,
		StoreTimeout:     DefaultStoreTimeout,
	}
}

// AgentWorkload summarizes assignments for one agent.
type AgentWorkload struct {
	Agent         string `json:"agent"`
	ActiveRFQs    int    `json:"active_rfqs"`
	PendingRFQs   int    `json:"pending_rfqs"`
	TotalAssigned int    `json:"total_assigned"`
}

// IRFQWorkflowUseCase exposes the RFQ lifecycle operations.
//
// Every mutating operation is serialized per RFQ id; the loser of a race
// observes ErrRFQConflict rather than a second write.
type IRFQWorkflowUseCase interface {
	IngestUpload(ctx context.Context, filename string, data []byte) (entities.RFQ, string, error)
	ListRFQs(ctx context.Context, f interfaces.RFQFilter) ([]entities.RFQ, error)
	GetRFQ(ctx context.Context, id string) (entities.RFQ, []entities.AuditLogEntry, error)
	AssignRate(ctx context.Context, rfqID, rateID string) (entities.RFQ, error)
	SubmitReview(ctx context.Context, rfqID string) (entities.RFQ, error)
	Approve(ctx context.Context, rfqID string) (entities.RFQ, error)
	Cancel(ctx context.Context, rfqID string) (entities.RFQ, error)
	AssignAgent(ctx context.Context, rfqID, agent string) (entities.RFQ, error)
	AgentWorkload(ctx context.Context) ([]AgentWorkload, error)
}

type RFQWorkflowUseCase struct {
	rfqs   interfaces.IRFQRepository
	rates  interfaces.IRateRepository
	audit  interfaces.IAuditLogRepository
	parser interfaces.IEmailParser
	emails interfaces.IEmailStore
	erp    interfaces.IQuotationGateway
	clock  interfaces.Clock
	cfg    WorkflowConfig
	log    *zap.Logger
	// inUse holds one mutex per in-flight RFQ id. Entries are dropped when
	// the id reaches a terminal status, so the map tracks open work only.
	inUse sync.Map // rfq id -> *sync.Mutex
}

var _ IRFQWorkflowUseCase = (*RFQWorkflowUseCase)(nil)

func NewRFQWorkflowUseCase(
	rfqs interfaces.IRFQRepository,
	rates interfaces.IRateRepository,
	audit interfaces.IAuditLogRepository,
	parser interfaces.IEmailParser,
	emails interfaces.IEmailStore,
	erp interfaces.IQuotationGateway,
	clock interfaces.Clock,
	cfg WorkflowConfig,
	log *zap.Logger,
) *RFQWorkflowUseCase {
	if clock == nil {
		clock = interfaces.RealClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SLAStandardHours <= 0 {
		cfg = DefaultWorkflowConfig()
	}
	return &RFQWorkflowUseCase{
		rfqs:   rfqs,
		rates:  rates,
		audit:  audit,
		parser: parser,
		emails: emails,
		erp:    erp,
		clock:  clock,
		cfg:    cfg,
		log:    log,
	}
}

// acquire serializes transitions per RFQ id. At most one in-flight
// transition per id; the loser reports the conflict instead of waiting so
// the caller can re-read the already-updated record.
func (u *RFQWorkflowUseCase) acquire(id string) (func(), error) {
	v, _ := u.inUse.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, ErrRFQConflict
	}
	return mu.Unlock, nil
}

// IngestUpload runs the intake pipeline: persist upload -> parse ->
// create(received) -> parsing -> rates_lookup -> matcher, landing at
// quote_draft (accepted match, ERP draft created), rates_pending (no
// acceptable rate), or rates_lookup's pending branch when routing info is
// incomplete.
func (u *RFQWorkflowUseCase) IngestUpload(ctx context.Context, filename string, data []byte) (entities.RFQ, string, error) {
	rfqID := uuid.NewString()

	// Retain the raw email first; losing the original would break the
	// audit trail, but a storage hiccup must not reject the request.
	emailPath, storeErr := u.emails.Save(ctx, rfqID+".eml", data)
	if storeErr != nil {
		u.log.Warn("email upload not persisted",
			zap.String("rfq_id", rfqID), zap.Error(storeErr))
	}

	parsed, parseErr := u.parser.Parse(filename, data)
	if parseErr != nil {
		// A parse failure still creates a trackable record.
		u.log.Warn("email parse failed, creating bare rfq",
			zap.String("rfq_id", rfqID), zap.Error(parseErr))
		parsed = interfaces.ParsedEmail{Urgency: entities.UrgencyStandard}
	}
	if parsed.Urgency == "" {
		parsed.Urgency = entities.UrgencyStandard
	}

	now := u.clock.Now()
	targetHours, deadline := sla.Deadline(parsed.Urgency, now, u.cfg.SLAStandardHours, u.cfg.SLAUrgentHours)

	rfq := entities.RFQ{
		ID:               rfqID,
		RFQReference:     parsed.Reference,
		CustomerName:     parsed.CustomerName,
		CustomerEmail:    parsed.CustomerEmail,
		Subject:          parsed.Subject,
		Status:           entities.StatusReceived,
		ShippingMode:     parsed.ShippingMode,
		Origin:           strings.ToUpper(parsed.Origin),
		Destination:      strings.ToUpper(parsed.Destination),
		IsDangerousGoods: parsed.IsDangerousGoods,
		Urgency:          parsed.Urgency,
		TotalWeightKG:    parsed.TotalWeightKG,
		EmailFilePath:    emailPath,
		SLATargetHours:   targetHours,
		SLADeadlineAt:    deadline,
		ReceivedAt:       now,
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
	}

	err := callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		rfq, err = u.rfqs.Create(ctx, rfq)
		return err
	})
	if err != nil {
		return entities.RFQ{}, "", err
	}
	if err := u.appendAudit(ctx, entities.AuditLogEntry{
		RFQID: rfqID, Seq: auditSeq(rfq.Version, 0),
		Event: entities.AuditEventCreated, NewValue: string(entities.StatusReceived),
		Timestamp: now,
	}); err != nil {
		return entities.RFQ{}, "", err
	}

	unlock, err := u.acquire(rfqID)
	if err != nil {
		return entities.RFQ{}, "", err
	}
	defer unlock()

	if rfq, err = u.transition(ctx, rfq, entities.StatusParsing, nil); err != nil {
		return entities.RFQ{}, "", err
	}
	if rfq, err = u.transition(ctx, rfq, entities.StatusRatesLookup, nil); err != nil {
		return entities.RFQ{}, "", err
	}

	if rfq.Origin == "" || rfq.Destination == "" || !rfq.ShippingMode.Valid() {
		rfq, err = u.transition(ctx, rfq, entities.StatusRatesPending, nil)
		if err != nil {
			return entities.RFQ{}, "", err
		}
		return rfq, "Incomplete routing info (missing origin/destination/mode). Status: rates_pending.", nil
	}

	lookup, err := u.lookupForRFQ(ctx, rfq)
	if err != nil {
		return entities.RFQ{}, "", err
	}

	if !lookup.Found || lookup.Confidence < u.cfg.AcceptConfidence {
		rfq, err = u.transition(ctx, rfq, entities.StatusRatesPending, nil)
		if err != nil {
			return entities.RFQ{}, "", err
		}
		return rfq, fmt.Sprintf("No rate accepted for route. Status: rates_pending. %s", lookup.Message), nil
	}

	rate := *lookup.Rate
	rfq, err = u.transition(ctx, rfq, entities.StatusRatesFound, func(r *entities.RFQ) {
		r.RateID = rate.ID
		r.RateAmount = &rate.RatePerUnit
		r.RateCurrency = rate.Currency
		r.EstimatedCost = lookup.EstimatedCost
	})
	if err != nil {
		return entities.RFQ{}, "", err
	}

	ref, err := u.erp.CreateSaleOrder(ctx, interfaces.QuotationDraft{
		CustomerName: rfq.CustomerName,
		Reference:    rfq.RFQReference,
		Origin:       rfq.Origin,
		Destination:  rfq.Destination,
	})
	if err != nil {
		return entities.RFQ{}, "", err
	}
	rfq, err = u.transition(ctx, rfq, entities.StatusQuoteDraft, func(r *entities.RFQ) {
		r.OdooSaleOrderID = &ref.SaleOrderID
		r.OdooQuotationNumber = ref.QuotationNumber
	})
	if err != nil {
		return entities.RFQ{}, "", err
	}

	u.log.Info("rfq pipeline complete",
		zap.String("rfq_id", rfq.ID),
		zap.String("status", string(rfq.Status)),
		zap.String("match_type", string(lookup.MatchType)),
		zap.Float64("confidence", lookup.Confidence))

	msg := fmt.Sprintf("Rate found (%s, confidence %.2f). Draft quote created: %s",
		lookup.MatchType, lookup.Confidence, ref.QuotationNumber)
	return rfq, msg, nil
}

func (u *RFQWorkflowUseCase) lookupForRFQ(ctx context.Context, rfq entities.RFQ) (RateLookupResult, error) {
	var candidates []entities.Rate
	err := callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		candidates, err = u.rates.List(ctx, interfaces.RateFilter{Mode: rfq.ShippingMode})
		return err
	})
	if err != nil {
		return RateLookupResult{}, err
	}
	return MatchRate(RateLookupRequest{
		Origin:           rfq.Origin,
		Destination:      rfq.Destination,
		Mode:             rfq.ShippingMode,
		WeightKG:         rfq.TotalWeightKG,
		IsDangerousGoods: rfq.IsDangerousGoods,
	}, candidates, u.clock.Now()), nil
}

func (u *RFQWorkflowUseCase) ListRFQs(ctx context.Context, f interfaces.RFQFilter) ([]entities.RFQ, error) {
	f.Urgency = entities.Urgency(strings.ToUpper(string(f.Urgency)))

	var rfqs []entities.RFQ
	err := callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		rfqs, err = u.rfqs.List(ctx, f)
		return err
	})
	return rfqs, err
}

func (u *RFQWorkflowUseCase) GetRFQ(ctx context.Context, id string) (entities.RFQ, []entities.AuditLogEntry, error) {
	rfq, err := u.getRFQ(ctx, id)
	if err != nil {
		return entities.RFQ{}, nil, err
	}

	var trail []entities.AuditLogEntry
	err = callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		trail, err = u.audit.ListByRFQ(ctx, id)
		return err
	})
	if err != nil {
		return entities.RFQ{}, nil, err
	}
	return rfq, trail, nil
}

// AssignRate attaches a rate to a pending or matched RFQ, prices it, drafts
// the ERP quotation, and advances to quote_draft.
func (u *RFQWorkflowUseCase) AssignRate(ctx context.Context, rfqID, rateID string) (entities.RFQ, error) {
	rfqID = strings.TrimSpace(rfqID)
	rateID = strings.TrimSpace(rateID)
	if rfqID == "" {
		return entities.RFQ{}, ErrInvalidRFQID
	}
	if rateID == "" {
		return entities.RFQ{}, ErrInvalidRateID
	}

	unlock, err := u.acquire(rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	defer unlock()

	rfq, err := u.getRFQ(ctx, rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	if rfq.Status.IsTerminal() {
		return entities.RFQ{}, fmt.Errorf("%w: rfq is %s", ErrInvalidTransition, rfq.Status)
	}
	if !rfq.Status.CanTransitionTo(entities.StatusQuoteDraft) {
		return entities.RFQ{}, fmt.Errorf("%w: cannot assign rate from %s", ErrInvalidTransition, rfq.Status)
	}

	var rate entities.Rate
	err = callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		rate, err = u.rates.GetByID(ctx, rateID)
		return err
	})
	if err != nil {
		return entities.RFQ{}, err
	}
	if rate.ID == "" {
		return entities.RFQ{}, ErrRateNotFound
	}

	ref, err := u.erp.CreateSaleOrder(ctx, interfaces.QuotationDraft{
		CustomerName: rfq.CustomerName,
		Reference:    rfq.RFQReference,
		Origin:       rfq.Origin,
		Destination:  rfq.Destination,
	})
	if err != nil {
		return entities.RFQ{}, err
	}

	oldRateID := rfq.RateID
	return u.transitionWithExtra(ctx, rfq, entities.StatusQuoteDraft,
		func(r *entities.RFQ) {
			r.RateID = rate.ID
			r.RateAmount = &rate.RatePerUnit
			r.RateCurrency = rate.Currency
			r.EstimatedCost = EstimateCost(rate, r.TotalWeightKG, r.IsDangerousGoods)
			r.OdooSaleOrderID = &ref.SaleOrderID
			r.OdooQuotationNumber = ref.QuotationNumber
		},
		func(now time.Time, version int64) []entities.AuditLogEntry {
			return []entities.AuditLogEntry{{
				RFQID: rfq.ID, Seq: auditSeq(version, 1),
				Event:    entities.AuditEventRateAssigned,
				OldValue: oldRateID, NewValue: rate.ID,
				Timestamp: now,
			}}
		})
}

// SubmitReview marks drafting complete: quote_draft -> quote_review.
func (u *RFQWorkflowUseCase) SubmitReview(ctx context.Context, rfqID string) (entities.RFQ, error) {
	return u.simpleTransition(ctx, rfqID, entities.StatusQuoteReview, nil)
}

// Approve requires quote_review, confirms the ERP quotation and sends.
func (u *RFQWorkflowUseCase) Approve(ctx context.Context, rfqID string) (entities.RFQ, error) {
	rfqID = strings.TrimSpace(rfqID)
	if rfqID == "" {
		return entities.RFQ{}, ErrInvalidRFQID
	}

	unlock, err := u.acquire(rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	defer unlock()

	rfq, err := u.getRFQ(ctx, rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	if rfq.Status != entities.StatusQuoteReview {
		return entities.RFQ{}, fmt.Errorf("%w: rfq is %s, expected %s",
			ErrInvalidTransition, rfq.Status, entities.StatusQuoteReview)
	}

	if rfq.OdooSaleOrderID != nil {
		if err := u.erp.ConfirmQuotation(ctx, *rfq.OdooSaleOrderID); err != nil {
			return entities.RFQ{}, err
		}
	}
	return u.transition(ctx, rfq, entities.StatusSent, nil)
}

// Cancel is legal from any non-terminal status.
func (u *RFQWorkflowUseCase) Cancel(ctx context.Context, rfqID string) (entities.RFQ, error) {
	return u.simpleTransition(ctx, rfqID, entities.StatusCancelled, nil)
}

// AssignAgent is a side-channel mutation: it does not transition status but
// still writes under the per-RFQ lock and version check.
func (u *RFQWorkflowUseCase) AssignAgent(ctx context.Context, rfqID, agent string) (entities.RFQ, error) {
	rfqID = strings.TrimSpace(rfqID)
	agent = strings.TrimSpace(agent)
	if rfqID == "" {
		return entities.RFQ{}, ErrInvalidRFQID
	}
	if agent == "" {
		return entities.RFQ{}, ErrInvalidAgent
	}

	unlock, err := u.acquire(rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	defer unlock()

	rfq, err := u.getRFQ(ctx, rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}

	now := u.clock.Now()
	oldAgent := rfq.AssignedAgent
	rfq.AssignedAgent = agent
	rfq.UpdatedAt = now
	rfq.Version++

	entry := entities.AuditLogEntry{
		RFQID: rfq.ID, Seq: auditSeq(rfq.Version, 0),
		Event:    entities.AuditEventAgentAssigned,
		OldValue: oldAgent, NewValue: agent,
		Timestamp: now,
	}

	var updated entities.RFQ
	err = callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		updated, err = u.rfqs.UpdateWithAudit(ctx, rfq, []entities.AuditLogEntry{entry})
		return err
	})
	if err != nil {
		return entities.RFQ{}, err
	}
	return updated, nil
}

func (u *RFQWorkflowUseCase) AgentWorkload(ctx context.Context) ([]AgentWorkload, error) {
	rfqs, err := u.ListRFQs(ctx, interfaces.RFQFilter{})
	if err != nil {
		return nil, err
	}

	byAgent := map[string]*AgentWorkload{}
	order := []string{}
	for _, r := range rfqs {
		if r.AssignedAgent == "" {
			continue
		}
		w, ok := byAgent[r.AssignedAgent]
		if !ok {
			w = &AgentWorkload{Agent: r.AssignedAgent}
			byAgent[r.AssignedAgent] = w
			order = append(order, r.AssignedAgent)
		}
		w.TotalAssigned++
		if r.IsOpen() {
			w.ActiveRFQs++
		}
		if r.Status == entities.StatusRatesPending {
			w.PendingRFQs++
		}
	}

	out := make([]AgentWorkload, 0, len(order))
	for _, agent := range order {
		out = append(out, *byAgent[agent])
	}
	return out, nil
}

// simpleTransition locks, loads and applies a single status move.
func (u *RFQWorkflowUseCase) simpleTransition(ctx context.Context, rfqID string, next entities.RFQStatus, mutate func(*entities.RFQ)) (entities.RFQ, error) {
	rfqID = strings.TrimSpace(rfqID)
	if rfqID == "" {
		return entities.RFQ{}, ErrInvalidRFQID
	}

	unlock, err := u.acquire(rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	defer unlock()

	rfq, err := u.getRFQ(ctx, rfqID)
	if err != nil {
		return entities.RFQ{}, err
	}
	return u.transition(ctx, rfq, next, mutate)
}

func (u *RFQWorkflowUseCase) transition(ctx context.Context, rfq entities.RFQ, next entities.RFQStatus, mutate func(*entities.RFQ)) (entities.RFQ, error) {
	return u.transitionWithExtra(ctx, rfq, next, mutate, nil)
}

// transitionWithExtra performs one guarded status move. The status write
// and its audit entries commit in a single repository transaction; extra
// entries (e.g. rate_assigned) ride the same transaction.
func (u *RFQWorkflowUseCase) transitionWithExtra(
	ctx context.Context,
	rfq entities.RFQ,
	next entities.RFQStatus,
	mutate func(*entities.RFQ),
	extra func(now time.Time, version int64) []entities.AuditLogEntry,
) (entities.RFQ, error) {
	if !rfq.Status.CanTransitionTo(next) {
		return entities.RFQ{}, fmt.Errorf("%w: cannot transition from %q to %q (allowed: %v)",
			ErrInvalidTransition, rfq.Status, next, rfq.Status.AllowedTransitions())
	}

	now := u.clock.Now()
	old := rfq.Status
	rfq.Status = next
	rfq.UpdatedAt = now
	rfq.Version++

	switch next {
	case entities.StatusRatesLookup:
		rfq.ParsingCompletedAt = &now
	case entities.StatusRatesFound:
		rfq.RateFoundAt = &now
	case entities.StatusQuoteDraft:
		rfq.QuoteDraftedAt = &now
	case entities.StatusSent:
		rfq.QuoteSentAt = &now
	}
	if mutate != nil {
		mutate(&rfq)
	}

	entries := []entities.AuditLogEntry{{
		RFQID: rfq.ID, Seq: auditSeq(rfq.Version, 0),
		Event:    entities.AuditEventStatusChanged,
		OldValue: string(old), NewValue: string(next),
		Timestamp: now,
	}}
	if extra != nil {
		entries = append(entries, extra(now, rfq.Version)...)
	}

	var updated entities.RFQ
	err := callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		updated, err = u.rfqs.UpdateWithAudit(ctx, rfq, entries)
		return err
	})
	if err != nil {
		return entities.RFQ{}, err
	}
	if updated.Status.IsTerminal() {
		// No further transition is legal, so the lock entry is dead weight.
		u.inUse.Delete(updated.ID)
	}
	return updated, nil
}

func (u *RFQWorkflowUseCase) getRFQ(ctx context.Context, id string) (entities.RFQ, error) {
	var rfq entities.RFQ
	err := callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		var err error
		rfq, err = u.rfqs.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.RFQ{}, err
	}
	if rfq.ID == "" {
		return entities.RFQ{}, ErrRFQNotFound
	}
	return rfq, nil
}

func (u *RFQWorkflowUseCase) appendAudit(ctx context.Context, e entities.AuditLogEntry) error {
	return callStore(ctx, u.cfg.StoreTimeout, func(ctx context.Context) error {
		return u.audit.Append(ctx, e)
	})
}

// auditSeq orders entries per RFQ: the record version majors the sequence,
// leaving room for extra entries written in the same transaction.
func auditSeq(version int64, offset int64) int64 {
	return version*10 + offset
}
