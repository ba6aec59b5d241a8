package response

import (
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
)

// RateResponse is a catalog entry with its window-derived status.
type RateResponse struct {
	ID              string    `json:"id"`
	CarrierName     string    `json:"carrier_name"`
	Mode            string    `json:"mode"`
	OriginPort      string    `json:"origin_port"`
	DestinationPort string    `json:"destination_port"`
	Currency        string    `json:"currency"`
	RatePerUnit     float64   `json:"rate_per_unit"`
	Unit            string    `json:"unit"`
	MinimumCharge   *float64  `json:"minimum_charge,omitempty"`
	DGSurchargePct  *float64  `json:"dg_surcharge_pct,omitempty"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromRate(r entities.Rate, now time.Time) RateResponse {
	return RateResponse{
		ID:              r.ID,
		CarrierName:     r.CarrierName,
		Mode:            string(r.Mode),
		OriginPort:      r.OriginPort,
		DestinationPort: r.DestinationPort,
		Currency:        r.Currency,
		RatePerUnit:     r.RatePerUnit,
		Unit:            string(r.Unit),
		MinimumCharge:   r.MinimumCharge,
		DGSurchargePct:  r.DGSurchargePct,
		ValidFrom:       r.ValidFrom,
		ValidTo:         r.ValidTo,
		Status:          string(r.StatusAt(now)),
		Source:          r.Source,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromRates(rates []entities.Rate, now time.Time) []RateResponse {
	out := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, FromRate(r, now))
	}
	return out
}

// RateLookupResponse is the matcher verdict for one lane request.
type RateLookupResponse struct {
	Found         bool          `json:"found"`
	MatchType     string        `json:"match_type"`
	Rate          *RateResponse `json:"rate,omitempty"`
	EstimatedCost *float64      `json:"estimated_cost,omitempty"`
	Confidence    float64       `json:"confidence"`
	Message       string        `json:"message"`
}

func FromLookupResult(res usecase.RateLookupResult, now time.Time) RateLookupResponse {
	out := RateLookupResponse{
		Found:         res.Found,
		MatchType:     string(res.MatchType),
		EstimatedCost: res.EstimatedCost,
		Confidence:    res.Confidence,
		Message:       res.Message,
	}
	if res.Rate != nil {
		rate := FromRate(*res.Rate, now)
		out.Rate = &rate
	}
	return out
}
