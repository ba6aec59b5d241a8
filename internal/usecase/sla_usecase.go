package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/sla"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

// SLAAlert is one open RFQ positioned against its deadline.
type SLAAlert struct {
	RFQID          string  `json:"rfq_id"`
	RFQReference   string  `json:"rfq_reference,omitempty"`
	CustomerName   string  `json:"customer_name,omitempty"`
	Subject        string  `json:"subject,omitempty"`
	Status         string  `json:"status"`
	Urgency        string  `json:"urgency"`
	SLADeadlineAt  string  `json:"sla_deadline_at"`
	HoursRemaining float64 `json:"hours_remaining"`
	SLATargetHours int     `json:"sla_target_hours"`
	AssignedAgent  string  `json:"assigned_agent,omitempty"`
	SLABreachedAt  string  `json:"sla_breached_at,omitempty"`
}

// SLAAlerts is the dashboard alerts payload.
type SLAAlerts struct {
	Summary struct {
		BreachedCount    int `json:"breached_count"`
		ApproachingCount int `json:"approaching_count"`
		OnTrackCount     int `json:"on_track_count"`
		TotalOpen        int `json:"total_open"`
	} `json:"summary"`
	Breached    []SLAAlert `json:"breached,omitempty"`
	Approaching []SLAAlert `json:"approaching"`
}

// SLACheckResult summarizes one breach sweep.
type SLACheckResult struct {
	Checked       int    `json:"checked"`
	NewlyBreached int    `json:"newly_breached"`
	Timestamp     string `json:"timestamp"`
}

// SLAStatistics reports quote turnaround over a trailing window.
type SLAStatistics struct {
	PeriodDays       int      `json:"period_days"`
	TotalCompleted   int      `json:"total_completed"`
	OnTimeCount      int      `json:"on_time_count"`
	BreachedCount    int      `json:"breached_count"`
	OnTimePercentage *float64 `json:"on_time_percentage"`
	AvgResponseHours *float64 `json:"avg_response_hours"`
}

// ISLAUseCase exposes deadline evaluation over the open RFQ population.
type ISLAUseCase interface {
	Alerts(ctx context.Context, includeBreached bool, approachingHours float64) (SLAAlerts, error)
	RunCheck(ctx context.Context) (SLACheckResult, error)
	Statistics(ctx context.Context, days int) (SLAStatistics, error)
}

type SLAUseCase struct {
	rfqs         interfaces.IRFQRepository
	clock        interfaces.Clock
	storeTimeout time.Duration
	log          *zap.Logger
}

var _ ISLAUseCase = (*SLAUseCase)(nil)

func NewSLAUseCase(rfqs interfaces.IRFQRepository, clock interfaces.Clock, storeTimeout time.Duration, log *zap.Logger) *SLAUseCase {
	if clock == nil {
		clock = interfaces.RealClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SLAUseCase{rfqs: rfqs, clock: clock, storeTimeout: storeTimeout, log: log}
}

// Alerts classifies every open RFQ lazily against now. Classification here
// and the periodic sweep are equivalent: both derive from the same pure
// function of (now, deadline).
func (u *SLAUseCase) Alerts(ctx context.Context, includeBreached bool, approachingHours float64) (SLAAlerts, error) {
	if approachingHours <= 0 {
		approachingHours = sla.DefaultApproachingHours
	}

	open, err := u.listOpen(ctx)
	if err != nil {
		return SLAAlerts{}, err
	}

	now := u.clock.Now()
	var out SLAAlerts
	var breached, approaching []SLAAlert
	for _, rfq := range open {
		alert := SLAAlert{
			RFQID:          rfq.ID,
			RFQReference:   rfq.RFQReference,
			CustomerName:   rfq.CustomerName,
			Subject:        rfq.Subject,
			Status:         string(rfq.Status),
			Urgency:        string(rfq.Urgency),
			SLADeadlineAt:  rfq.SLADeadlineAt.Format(time.RFC3339),
			HoursRemaining: roundHours(sla.HoursRemaining(now, rfq.SLADeadlineAt)),
			SLATargetHours: rfq.SLATargetHours,
			AssignedAgent:  rfq.AssignedAgent,
		}

		switch sla.Classify(now, rfq.SLADeadlineAt, rfq.SLABreached, approachingHours) {
		case sla.Breached:
			if rfq.SLABreachedAt != nil {
				alert.SLABreachedAt = rfq.SLABreachedAt.Format(time.RFC3339)
			} else {
				alert.SLABreachedAt = now.Format(time.RFC3339)
			}
			breached = append(breached, alert)
		case sla.Approaching:
			approaching = append(approaching, alert)
		default:
			out.Summary.OnTrackCount++
		}
	}

	// Most overdue first; approaching by soonest deadline.
	sort.Slice(breached, func(i, j int) bool {
		return breached[i].HoursRemaining < breached[j].HoursRemaining
	})
	sort.Slice(approaching, func(i, j int) bool {
		return approaching[i].HoursRemaining < approaching[j].HoursRemaining
	})

	out.Summary.BreachedCount = len(breached)
	out.Summary.ApproachingCount = len(approaching)
	out.Summary.TotalOpen = len(open)
	out.Approaching = approaching
	if includeBreached {
		out.Breached = breached
	}
	return out, nil
}

// RunCheck sweeps open RFQs and records new breaches. Idempotent: an RFQ
// already flagged is skipped, and re-running past the deadline always
// converges on the same breached set.
func (u *SLAUseCase) RunCheck(ctx context.Context) (SLACheckResult, error) {
	open, err := u.listOpen(ctx)
	if err != nil {
		return SLACheckResult{}, err
	}

	now := u.clock.Now()
	result := SLACheckResult{Timestamp: now.Format(time.RFC3339)}
	for _, rfq := range open {
		if rfq.SLABreached {
			continue
		}
		result.Checked++
		if sla.Classify(now, rfq.SLADeadlineAt, false, 0) != sla.Breached {
			continue
		}

		rfq.SLABreached = true
		rfq.SLABreachedAt = &now
		rfq.UpdatedAt = now
		rfq.Version++

		entry := entities.AuditLogEntry{
			RFQID: rfq.ID, Seq: auditSeq(rfq.Version, 0),
			Event: entities.AuditEventSLABreached,
			NewValue: fmt.Sprintf("Deadline was %s, breached at %s",
				rfq.SLADeadlineAt.Format(time.RFC3339), now.Format(time.RFC3339)),
			Timestamp: now,
		}

		err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
			_, err := u.rfqs.UpdateWithAudit(ctx, rfq, []entities.AuditLogEntry{entry})
			return err
		})
		if err != nil {
			// A concurrent transition may have won the version race;
			// the next sweep re-evaluates the record.
			u.log.Warn("sla breach write skipped", zap.String("rfq_id", rfq.ID), zap.Error(err))
			continue
		}

		u.log.Warn("rfq breached sla",
			zap.String("rfq_id", rfq.ID),
			zap.String("status", string(rfq.Status)),
			zap.Time("deadline", rfq.SLADeadlineAt))
		result.NewlyBreached++
	}

	u.log.Info("sla check completed",
		zap.Int("checked", result.Checked),
		zap.Int("newly_breached", result.NewlyBreached))
	return result, nil
}

func (u *SLAUseCase) Statistics(ctx context.Context, days int) (SLAStatistics, error) {
	if days <= 0 {
		days = 7
	}

	var all []entities.RFQ
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		all, err = u.rfqs.List(ctx, interfaces.RFQFilter{Status: entities.StatusSent})
		return err
	})
	if err != nil {
		return SLAStatistics{}, err
	}

	cutoff := u.clock.Now().AddDate(0, 0, -days)
	stats := SLAStatistics{PeriodDays: days}
	var totalResponseHours float64
	var responseSamples int
	for _, rfq := range all {
		if rfq.QuoteSentAt == nil || rfq.QuoteSentAt.Before(cutoff) {
			continue
		}
		stats.TotalCompleted++
		if rfq.SLABreached {
			stats.BreachedCount++
		} else {
			stats.OnTimeCount++
		}
		totalResponseHours += rfq.QuoteSentAt.Sub(rfq.ReceivedAt).Hours()
		responseSamples++
	}

	if stats.TotalCompleted > 0 {
		pct := roundHours(float64(stats.OnTimeCount) / float64(stats.TotalCompleted) * 100)
		stats.OnTimePercentage = &pct
	}
	if responseSamples > 0 {
		avg := roundHours(totalResponseHours / float64(responseSamples))
		stats.AvgResponseHours = &avg
	}
	return stats, nil
}

func (u *SLAUseCase) listOpen(ctx context.Context) ([]entities.RFQ, error) {
	var all []entities.RFQ
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		all, err = u.rfqs.List(ctx, interfaces.RFQFilter{})
		return err
	})
	if err != nil {
		return nil, err
	}

	open := make([]entities.RFQ, 0, len(all))
	for _, rfq := range all {
		if rfq.IsOpen() && !rfq.SLADeadlineAt.IsZero() {
			open = append(open, rfq)
		}
	}
	return open, nil
}

func roundHours(h float64) float64 {
	return math.Round(h*10) / 10
}
