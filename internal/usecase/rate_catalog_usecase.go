package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase/interfaces"
)

var (
	ErrRateNotFound   = errors.New("rate not found")
	ErrRateValidation = errors.New("invalid rate")
	ErrInvalidRateID  = errors.New("invalid rate id")
)

// RatePatch carries optional fields for partial rate updates. Nil means
// "leave unchanged"; supplied fields are re-validated before writing.
type RatePatch struct {
	CarrierName    *string
	RatePerUnit    *float64
	MinimumCharge  *float64
	DGSurchargePct *float64
	ValidFrom      *time.Time
	ValidTo        *time.Time
	Notes          *string
}

// RateStatusFilter optionally restricts a listing to the status derived
// from the validity window at query time.
type RateStatusFilter string

const (
	RateFilterNone    RateStatusFilter = ""
	RateFilterActive  RateStatusFilter = "ACTIVE"
	RateFilterExpired RateStatusFilter = "EXPIRED"
)

// IRateCatalogUseCase exposes carrier rate catalog operations.
type IRateCatalogUseCase interface {
	CreateRate(ctx context.Context, r entities.Rate) (entities.Rate, error)
	GetRate(ctx context.Context, id string) (entities.Rate, error)
	ListRates(ctx context.Context, f interfaces.RateFilter, status RateStatusFilter) ([]entities.Rate, error)
	UpdateRate(ctx context.Context, id string, patch RatePatch) (entities.Rate, error)
	Lookup(ctx context.Context, req RateLookupRequest) (RateLookupResult, error)
}

type RateCatalogUseCase struct {
	repo         interfaces.IRateRepository
	clock        interfaces.Clock
	storeTimeout time.Duration
}

var _ IRateCatalogUseCase = (*RateCatalogUseCase)(nil)

func NewRateCatalogUseCase(repo interfaces.IRateRepository, clock interfaces.Clock, storeTimeout time.Duration) *RateCatalogUseCase {
	if clock == nil {
		clock = interfaces.RealClock{}
	}
	return &RateCatalogUseCase{repo: repo, clock: clock, storeTimeout: storeTimeout}
}

func (u *RateCatalogUseCase) CreateRate(ctx context.Context, r entities.Rate) (entities.Rate, error) {
	r.CarrierName = strings.TrimSpace(r.CarrierName)
	r.OriginPort = strings.ToUpper(strings.TrimSpace(r.OriginPort))
	r.DestinationPort = strings.ToUpper(strings.TrimSpace(r.DestinationPort))
	r.Mode = entities.TransportMode(strings.ToUpper(string(r.Mode)))
	r.Unit = entities.RateUnit(strings.ToUpper(string(r.Unit)))
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.Source == "" {
		r.Source = "MANUAL"
	}

	if err := validateRate(r); err != nil {
		return entities.Rate{}, err
	}

	now := u.clock.Now()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	var created entities.Rate
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		created, err = u.repo.Create(ctx, r)
		return err
	})
	if err != nil {
		return entities.Rate{}, err
	}
	return created, nil
}

func (u *RateCatalogUseCase) GetRate(ctx context.Context, id string) (entities.Rate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rate{}, ErrInvalidRateID
	}

	var rate entities.Rate
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		rate, err = u.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Rate{}, err
	}
	if rate.ID == "" {
		return entities.Rate{}, ErrRateNotFound
	}
	return rate, nil
}

// ListRates applies repository filters and, when requested, the query-time
// status filter. Status is derived here: it is never read from storage.
func (u *RateCatalogUseCase) ListRates(ctx context.Context, f interfaces.RateFilter, status RateStatusFilter) ([]entities.Rate, error) {
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
	f.Mode = entities.TransportMode(strings.ToUpper(string(f.Mode)))

	var rates []entities.Rate
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		rates, err = u.repo.List(ctx, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	if status == RateFilterNone {
		return rates, nil
	}

	now := u.clock.Now()
	want := entities.RateStatus(strings.ToUpper(string(status)))
	filtered := make([]entities.Rate, 0, len(rates))
	for _, r := range rates {
		if r.StatusAt(now) == want {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (u *RateCatalogUseCase) UpdateRate(ctx context.Context, id string, patch RatePatch) (entities.Rate, error) {
	rate, err := u.GetRate(ctx, id)
	if err != nil {
		return entities.Rate{}, err
	}

	if patch.CarrierName != nil {
		rate.CarrierName = strings.TrimSpace(*patch.CarrierName)
	}
	if patch.RatePerUnit != nil {
		rate.RatePerUnit = *patch.RatePerUnit
	}
	if patch.MinimumCharge != nil {
		rate.MinimumCharge = patch.MinimumCharge
	}
	if patch.DGSurchargePct != nil {
		rate.DGSurchargePct = patch.DGSurchargePct
	}
	if patch.ValidFrom != nil {
		rate.ValidFrom = *patch.ValidFrom
	}
	if patch.ValidTo != nil {
		rate.ValidTo = *patch.ValidTo
	}
	if patch.Notes != nil {
		rate.Notes = *patch.Notes
	}

	if err := validateRate(rate); err != nil {
		return entities.Rate{}, err
	}
	rate.UpdatedAt = u.clock.Now()

	var updated entities.Rate
	err = callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		updated, err = u.repo.Update(ctx, rate)
		return err
	})
	if err != nil {
		return entities.Rate{}, err
	}
	if updated.ID == "" {
		return entities.Rate{}, ErrRateNotFound
	}
	return updated, nil
}

func (u *RateCatalogUseCase) Lookup(ctx context.Context, req RateLookupRequest) (RateLookupResult, error) {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	req.Mode = entities.TransportMode(strings.ToUpper(string(req.Mode)))
	if req.Origin == "" || req.Destination == "" || !req.Mode.Valid() {
		return RateLookupResult{}, fmt.Errorf("%w: origin, destination and mode are required", ErrRateValidation)
	}

	var candidates []entities.Rate
	err := callStore(ctx, u.storeTimeout, func(ctx context.Context) error {
		var err error
		candidates, err = u.repo.List(ctx, interfaces.RateFilter{Mode: req.Mode})
		return err
	})
	if err != nil {
		return RateLookupResult{}, err
	}

	return MatchRate(req, candidates, u.clock.Now()), nil
}

func validateRate(r entities.Rate) error {
	if r.CarrierName == "" {
		return fmt.Errorf("%w: carrier_name is required", ErrRateValidation)
	}
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: mode must be AIR, SEA or ROAD", ErrRateValidation)
	}
	if r.OriginPort == "" || r.DestinationPort == "" {
		return fmt.Errorf("%w: origin_port and destination_port are required", ErrRateValidation)
	}
	if r.RatePerUnit <= 0 {
		return fmt.Errorf("%w: rate_per_unit must be positive", ErrRateValidation)
	}
	if !r.Unit.Valid() {
		return fmt.Errorf("%w: unit must be KG, CBM or CONTAINER", ErrRateValidation)
	}
	if r.MinimumCharge != nil && *r.MinimumCharge < 0 {
		return fmt.Errorf("%w: minimum_charge cannot be negative", ErrRateValidation)
	}
	if r.DGSurchargePct != nil && *r.DGSurchargePct < 0 {
		return fmt.Errorf("%w: dg_surcharge_pct cannot be negative", ErrRateValidation)
	}
	if !r.ValidFrom.Before(r.ValidTo) {
		return fmt.Errorf("%w: valid_from must precede valid_to", ErrRateValidation)
	}
	return nil
}
