package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

// MatchType identifies which matcher tier produced the candidate.
type MatchType string

const (
	MatchExact    MatchType = "EXACT"
	MatchSimilar  MatchType = "SIMILAR"
	MatchModeOnly MatchType = "MODE_ONLY"
	MatchNone     MatchType = "NONE"
)

// Tier confidences. Exact matches are taken at face value; the fallback
// tiers carry enough doubt that rates_lookup holds them for review when
// they fall under the acceptance threshold.
const (
	ConfidenceExact    = 1.0
	ConfidenceSimilar  = 0.6
	ConfidenceModeOnly = 0.3

	// AcceptConfidence is the default auto-advance threshold for
	// rates_lookup -> rates_found. Exact and similar matches pass;
	// mode-only matches park as rates_pending.
	AcceptConfidence = 0.5
)

type RateLookupRequest struct {
	Origin           string
	Destination      string
	Mode             entities.TransportMode
	WeightKG         *float64
	IsDangerousGoods bool
}

type RateLookupResult struct {
	Found         bool
	MatchType     MatchType
	Rate          *entities.Rate
	EstimatedCost *float64
	Confidence    float64
	Message       string
}

// matchStrategy is one tier of the lookup cascade. Strategies are tried in
// order; the first one returning a candidate wins.
type matchStrategy struct {
	matchType  MatchType
	confidence float64
	accepts    func(req RateLookupRequest, r entities.Rate) bool
}

var matchStrategies = []matchStrategy{
	{
		matchType:  MatchExact,
		confidence: ConfidenceExact,
		accepts: func(req RateLookupRequest, r entities.Rate) bool {
			return r.OriginPort == req.Origin && r.DestinationPort == req.Destination
		},
	},
	{
		matchType:  MatchSimilar,
		confidence: ConfidenceSimilar,
		accepts: func(req RateLookupRequest, r entities.Rate) bool {
			return r.OriginPort == req.Origin && portPrefixMatch(r.DestinationPort, req.Destination)
		},
	},
	{
		matchType:  MatchModeOnly,
		confidence: ConfidenceModeOnly,
		accepts: func(req RateLookupRequest, r entities.Rate) bool {
			return true // mode already filtered; any active rate on the lane qualifies
		},
	},
}

// MatchRate runs the tiered lookup over the candidate rates. Candidates are
// pre-filtered by mode; expired rates are discarded here against now.
// Pure: no storage or clock access.
func MatchRate(req RateLookupRequest, candidates []entities.Rate, now time.Time) RateLookupResult {
	active := make([]entities.Rate, 0, len(candidates))
	for _, r := range candidates {
		if r.Mode == req.Mode && r.StatusAt(now) == entities.RateStatusActive {
			active = append(active, r)
		}
	}

	for _, strat := range matchStrategies {
		matched := make([]entities.Rate, 0, len(active))
		for _, r := range active {
			if strat.accepts(req, r) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}

		// Cheapest first; among equal prices prefer the rate expiring
		// soonest so it gets consumed before it lapses.
		sort.Slice(matched, func(i, j int) bool {
			if matched[i].RatePerUnit != matched[j].RatePerUnit {
				return matched[i].RatePerUnit < matched[j].RatePerUnit
			}
			return matched[i].ValidTo.Before(matched[j].ValidTo)
		})

		best := matched[0]
		return RateLookupResult{
			Found:         true,
			MatchType:     strat.matchType,
			Rate:          &best,
			EstimatedCost: EstimateCost(best, req.WeightKG, req.IsDangerousGoods),
			Confidence:    strat.confidence,
			Message:       lookupMessage(strat.matchType, best, req),
		}
	}

	return RateLookupResult{
		Found:      false,
		MatchType:  MatchNone,
		Confidence: 0,
		Message:    fmt.Sprintf("No rates found for %s→%s (%s)", req.Origin, req.Destination, req.Mode),
	}
}

// EstimateCost prices a shipment against a rate. The DG surcharge applies
// to the base amount and the minimum charge floors the final figure. A nil
// weight yields a nil cost: the match itself is still reported.
func EstimateCost(r entities.Rate, weightKG *float64, isDG bool) *float64 {
	if weightKG == nil {
		return nil
	}
	cost := r.RatePerUnit * *weightKG
	if isDG && r.DGSurchargePct != nil {
		cost *= 1 + *r.DGSurchargePct/100
	}
	if r.MinimumCharge != nil && cost < *r.MinimumCharge {
		cost = *r.MinimumCharge
	}
	cost = math.Round(cost*100) / 100
	return &cost
}

// portPrefixMatch treats port codes sharing a 2+ character prefix as the
// same broad area (e.g. NLRTM vs NLAMS, or a UN/LOCODE vs its IATA stem).
func portPrefixMatch(a, b string) bool {
	if a == b {
		return true
	}
	if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
		return true
	}
	if len(a) >= 2 && len(b) >= 2 && a[:2] == b[:2] {
		return true
	}
	return false
}

func lookupMessage(mt MatchType, r entities.Rate, req RateLookupRequest) string {
	switch mt {
	case MatchExact:
		return fmt.Sprintf("Exact rate found: %s %s→%s", r.CarrierName, req.Origin, req.Destination)
	case MatchSimilar:
		return fmt.Sprintf("Similar route found: %s %s→%s (requested %s→%s)",
			r.CarrierName, r.OriginPort, r.DestinationPort, req.Origin, req.Destination)
	default:
		return fmt.Sprintf("Mode-level match: %s %s→%s (requested %s→%s)",
			r.CarrierName, r.OriginPort, r.DestinationPort, req.Origin, req.Destination)
	}
}
