package usecase

import (
	"context"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

// DashboardOverview is the status/urgency rollup for the landing page.
type DashboardOverview struct {
	ByStatus    map[string]int `json:"by_status"`
	Total       int            `json:"total"`
	UrgentCount int            `json:"urgent_count"`
}

// IDashboardUseCase is a pure read-side projection over the RFQ store.
type IDashboardUseCase interface {
	Overview(ctx context.Context) (DashboardOverview, error)
}

type DashboardUseCase struct {
	rfqs         interfaces.IRFQRepository
	storeTimeout time.Duration
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(rfqs interfaces.IRFQRepository, storeTimeout time.Duration) *DashboardUseCase {
	return &DashboardUseCase{rfqs: rfqs, storeTimeout: storeTimeout}
}

// Overview recomputes counts on every call; there is no cached state.
func (u *DashboardUseCase) Overview(ctx context.Context) (DashboardOverview, error) {
	var rfqs []entities.RFQ
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		rfqs, err = u.rfqs.List(ctx, interfaces.RFQFilter{})
		return err
	})
	if err != nil {
		return DashboardOverview{}, err
	}

	out := DashboardOverview{ByStatus: map[string]int{}}
	for _, rfq := range rfqs {
		out.ByStatus[string(rfq.Status)]++
		out.Total++
		if rfq.Urgency == entities.UrgencyUrgent {
			out.UrgentCount++
		}
	}
	return out, nil
}
