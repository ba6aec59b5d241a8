package entities

import "time"

// TransportMode is the carriage mode a rate applies to.
type TransportMode string

const (
	ModeAir  TransportMode = "AIR"
	ModeSea  TransportMode = "SEA"
	ModeRoad TransportMode = "ROAD"
)

func (m TransportMode) Valid() bool {
	switch m {
	case ModeAir, ModeSea, ModeRoad:
		return true
	}
	return false
}

// RateUnit is the charging unit for a carrier rate.
type RateUnit string

const (
	UnitKG        RateUnit = "KG"
	UnitCBM       RateUnit = "CBM"
	UnitContainer RateUnit = "CONTAINER"
)

func (u RateUnit) Valid() bool {
	switch u {
	case UnitKG, UnitCBM, UnitContainer:
		return true
	}
	return false
}

// RateStatus is derived from the validity window at query time. It is never
// persisted: a stored flag would go stale the moment valid_to passes.
type RateStatus string

const (
	RateStatusActive  RateStatus = "ACTIVE"
	RateStatusExpired RateStatus = "EXPIRED"
)

// Rate is a carrier price for a route/mode within a validity window.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A rate is editable until it is referenced by a quote; RFQs reference rates
// by id and never embed them.
type Rate struct {
	ID              string        `json:"id"`
	CarrierName     string        `json:"carrier_name"`
	Mode            TransportMode `json:"mode"`
	OriginPort      string        `json:"origin_port"`
	DestinationPort string        `json:"destination_port"`
	Currency        string        `json:"currency"`
	RatePerUnit     float64       `json:"rate_per_unit"`
	Unit            RateUnit      `json:"unit"`
	MinimumCharge   *float64      `json:"minimum_charge,omitempty"`
	DGSurchargePct  *float64      `json:"dg_surcharge_pct,omitempty"`
	ValidFrom       time.Time     `json:"valid_from"`
	ValidTo         time.Time     `json:"valid_to"`
	Source          string        `json:"source"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// StatusAt computes ACTIVE/EXPIRED against the given instant.
func (r Rate) StatusAt(now time.Time) RateStatus {
	if !now.Before(r.ValidFrom) && !now.After(r.ValidTo) {
		return RateStatusActive
	}
	return RateStatusExpired
}
