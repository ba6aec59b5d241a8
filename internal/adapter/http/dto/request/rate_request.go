package request

import (
	"errors"
	"strings"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

// RateCreateRequest is the catalog entry payload. Dates accept RFC 3339 or
// plain YYYY-MM-DD (rate sheets usually carry bare dates).
type RateCreateRequest struct {
	CarrierName     string   `json:"carrier_name" binding:"required"`
	Mode            string   `json:"mode" binding:"required"`
	OriginPort      string   `json:"origin_port" binding:"required"`
	DestinationPort string   `json:"destination_port" binding:"required"`
	Currency        string   `json:"currency"`
	RatePerUnit     float64  `json:"rate_per_unit" binding:"required"`
	Unit            string   `json:"unit" binding:"required"`
	MinimumCharge   *float64 `json:"minimum_charge"`
	DGSurchargePct  *float64 `json:"dg_surcharge_pct"`
	ValidFrom       string   `json:"valid_from" binding:"required"`
	ValidTo         string   `json:"valid_to" binding:"required"`
	Source          string   `json:"source"`
	Notes           string   `json:"notes"`
}

func (r RateCreateRequest) ToEntity() (entities.Rate, error) {
	validFrom, err := parseDate(r.ValidFrom)
	if err != nil {
		return entities.Rate{}, err
	}
	validTo, err := parseDate(r.ValidTo)
	if err != nil {
		return entities.Rate{}, err
	}
	return entities.Rate{
		CarrierName:     r.CarrierName,
		Mode:            entities.TransportMode(r.Mode),
		OriginPort:      r.OriginPort,
		DestinationPort: r.DestinationPort,
		Currency:        r.Currency,
		RatePerUnit:     r.RatePerUnit,
		Unit:            entities.RateUnit(r.Unit),
		MinimumCharge:   r.MinimumCharge,
		DGSurchargePct:  r.DGSurchargePct,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		Source:          r.Source,
		Notes:           r.Notes,
	}, nil
}

// RateUpdateRequest carries a partial update; absent fields stay unchanged.
type RateUpdateRequest struct {
	CarrierName    *string  `json:"carrier_name"`
	RatePerUnit    *float64 `json:"rate_per_unit"`
	MinimumCharge  *float64 `json:"minimum_charge"`
	DGSurchargePct *float64 `json:"dg_surcharge_pct"`
	ValidFrom      *string  `json:"valid_from"`
	ValidTo        *string  `json:"valid_to"`
	Notes          *string  `json:"notes"`
}

func (r RateUpdateRequest) ToPatch() (usecase.RatePatch, error) {
	patch := usecase.RatePatch{
		CarrierName:    r.CarrierName,
		RatePerUnit:    r.RatePerUnit,
		MinimumCharge:  r.MinimumCharge,
		DGSurchargePct: r.DGSurchargePct,
		Notes:          r.Notes,
	}
	if r.ValidFrom != nil {
		t, err := parseDate(*r.ValidFrom)
		if err != nil {
			return usecase.RatePatch{}, err
		}
		patch.ValidFrom = &t
	}
	if r.ValidTo != nil {
		t, err := parseDate(*r.ValidTo)
		if err != nil {
			return usecase.RatePatch{}, err
		}
		patch.ValidTo = &t
	}
	return patch, nil
}

// RateLookupRequest asks the matcher for the best rate on a lane.
type RateLookupRequest struct {
	Origin           string   `json:"origin" binding:"required"`
	Destination      string   `json:"destination" binding:"required"`
	Mode             string   `json:"mode" binding:"required"`
	WeightKG         *float64 `json:"weight_kg"`
	IsDangerousGoods bool     `json:"is_dangerous_goods"`
}

func (r RateLookupRequest) ToLookup() usecase.RateLookupRequest {
	return usecase.RateLookupRequest{
		Origin:           r.Origin,
		Destination:      r.Destination,
		Mode:             entities.TransportMode(strings.ToUpper(r.Mode)),
		WeightKG:         r.WeightKG,
		IsDangerousGoods: r.IsDangerousGoods,
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
