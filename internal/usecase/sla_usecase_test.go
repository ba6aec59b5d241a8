package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces/mocks"
)

func openRFQ(id string, deadline time.Time) entities.RFQ {
	return entities.RFQ{
		ID: id, Status: entities.StatusRatesPending,
		Urgency: entities.UrgencyStandard, SLATargetHours: 24,
		SLADeadlineAt: deadline, Version: 3,
	}
}

func TestSLAUseCase_Alerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRFQRepository(ctrl)
	uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

	breachedAt := testNow.Add(-time.Hour)
	flagged := openRFQ("flagged", testNow.Add(6*time.Hour))
	flagged.SLABreached = true
	flagged.SLABreachedAt = &breachedAt

	repo.EXPECT().List(gomock.Any(), interfaces.RFQFilter{}).Return([]entities.RFQ{
		openRFQ("safe", testNow.Add(12*time.Hour)),
		openRFQ("soon", testNow.Add(90*time.Minute)),
		openRFQ("very-soon", testNow.Add(30*time.Minute)),
		openRFQ("overdue", testNow.Add(-2*time.Hour)),
		flagged,
		{ID: "done", Status: entities.StatusSent, SLADeadlineAt: testNow.Add(-time.Hour)},
	}, nil)

	got, err := uc.Alerts(context.Background(), true, 2)
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}

	if got.Summary.TotalOpen != 5 {
		t.Errorf("total_open = %d, want 5 (terminal RFQ excluded)", got.Summary.TotalOpen)
	}
	if got.Summary.OnTrackCount != 1 {
		t.Errorf("on_track = %d, want 1", got.Summary.OnTrackCount)
	}
	if got.Summary.ApproachingCount != 2 || len(got.Approaching) != 2 {
		t.Fatalf("approaching = %d, want 2", got.Summary.ApproachingCount)
	}
	// Soonest deadline first.
	if got.Approaching[0].RFQID != "very-soon" || got.Approaching[1].RFQID != "soon" {
		t.Errorf("approaching order = %s, %s", got.Approaching[0].RFQID, got.Approaching[1].RFQID)
	}

	if got.Summary.BreachedCount != 2 || len(got.Breached) != 2 {
		t.Fatalf("breached = %d, want 2 (including the sticky flag)", got.Summary.BreachedCount)
	}
	// Most overdue first.
	if got.Breached[0].RFQID != "overdue" {
		t.Errorf("breached order starts with %s, want overdue", got.Breached[0].RFQID)
	}
	for _, b := range got.Breached {
		if b.SLABreachedAt == "" {
			t.Errorf("breached alert %s missing breached_at", b.RFQID)
		}
	}
}

func TestSLAUseCase_Alerts_ExcludesBreachedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRFQRepository(ctrl)
	uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.RFQ{
		openRFQ("overdue", testNow.Add(-time.Hour)),
	}, nil)

	got, err := uc.Alerts(context.Background(), false, 0)
	if err != nil {
		t.Fatalf("Alerts: %v", err)
	}
	if got.Summary.BreachedCount != 1 {
		t.Errorf("breached count = %d, want 1 in the summary", got.Summary.BreachedCount)
	}
	if got.Breached != nil {
		t.Errorf("breached list should be omitted, got %d entries", len(got.Breached))
	}
}

func TestSLAUseCase_RunCheck(t *testing.T) {
	t.Run("flags overdue rfqs once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIRFQRepository(ctrl)
		uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

		already := openRFQ("already", testNow.Add(-3*time.Hour))
		already.SLABreached = true

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.RFQ{
			openRFQ("overdue", testNow.Add(-time.Hour)),
			openRFQ("fine", testNow.Add(10*time.Hour)),
			already,
		}, nil)

		var written entities.RFQ
		var entries []entities.AuditLogEntry
		repo.EXPECT().UpdateWithAudit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RFQ, e []entities.AuditLogEntry) (entities.RFQ, error) {
				written = r
				entries = e
				return r, nil
			})

		res, err := uc.RunCheck(context.Background())
		if err != nil {
			t.Fatalf("RunCheck: %v", err)
		}
		if res.Checked != 2 {
			t.Errorf("checked = %d, want 2 (already-flagged skipped)", res.Checked)
		}
		if res.NewlyBreached != 1 {
			t.Errorf("newly_breached = %d, want 1", res.NewlyBreached)
		}
		if written.ID != "overdue" || !written.SLABreached || written.SLABreachedAt == nil {
			t.Errorf("written record = %+v, want overdue flagged", written)
		}
		if written.Version != 4 {
			t.Errorf("version = %d, want 4", written.Version)
		}
		if len(entries) != 1 || entries[0].Event != entities.AuditEventSLABreached {
			t.Fatalf("entries = %v, want one sla_breached entry", entries)
		}
	})

	t.Run("tolerates losing the version race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIRFQRepository(ctrl)
		uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.RFQ{
			openRFQ("racy", testNow.Add(-time.Hour)),
		}, nil)
		repo.EXPECT().UpdateWithAudit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.RFQ{}, interfaces.ErrVersionConflict)

		res, err := uc.RunCheck(context.Background())
		if err != nil {
			t.Fatalf("RunCheck should not fail on a lost race: %v", err)
		}
		if res.NewlyBreached != 0 {
			t.Errorf("newly_breached = %d, want 0", res.NewlyBreached)
		}
	})
}

func TestSLAUseCase_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRFQRepository(ctrl)
	uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

	sent := func(id string, receivedAgo, sentAgo time.Duration, breached bool) entities.RFQ {
		sentAt := testNow.Add(-sentAgo)
		return entities.RFQ{
			ID: id, Status: entities.StatusSent,
			ReceivedAt:  testNow.Add(-receivedAgo),
			QuoteSentAt: &sentAt,
			SLABreached: breached,
		}
	}

	repo.EXPECT().List(gomock.Any(), interfaces.RFQFilter{Status: entities.StatusSent}).
		Return([]entities.RFQ{
			sent("on-time", 10*time.Hour, 2*time.Hour, false),   // 8h turnaround
			sent("late", 30*time.Hour, 2*time.Hour, true),       // 28h turnaround
			sent("ancient", 400*time.Hour, 200*time.Hour, true), // outside the window
		}, nil)

	got, err := uc.Statistics(context.Background(), 7)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if got.PeriodDays != 7 || got.TotalCompleted != 2 {
		t.Fatalf("period=%d completed=%d, want 7/2", got.PeriodDays, got.TotalCompleted)
	}
	if got.OnTimeCount != 1 || got.BreachedCount != 1 {
		t.Errorf("on_time=%d breached=%d, want 1/1", got.OnTimeCount, got.BreachedCount)
	}
	if got.OnTimePercentage == nil || *got.OnTimePercentage != 50 {
		t.Errorf("on_time_percentage = %v, want 50", got.OnTimePercentage)
	}
	if got.AvgResponseHours == nil || *got.AvgResponseHours != 18 {
		t.Errorf("avg_response_hours = %v, want 18", got.AvgResponseHours)
	}
}

func TestSLAUseCase_Statistics_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIRFQRepository(ctrl)
	uc := NewSLAUseCase(repo, fixedClock{testNow}, time.Second, zap.NewNop())

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := uc.Statistics(context.Background(), 0)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if got.PeriodDays != 7 {
		t.Errorf("period_days = %d, want the 7-day default", got.PeriodDays)
	}
	if got.OnTimePercentage != nil || got.AvgResponseHours != nil {
		t.Errorf("percentages should stay nil with no completions: %+v", got)
	}
}
