package interfaces

import (
	"context"

	"github.com/eromsubebe/poc-auto-quote-response/internal/domain/entities"
)

// RateFilter narrows List results; empty fields are ignored and supplied
// fields combine with logical AND. Status never appears here: it derives
// from the validity window, so the use case filters it after loading.
type RateFilter struct {
	Mode        entities.TransportMode
	Origin      string
	Destination string
}

// IRateRepository abstracts DynamoDB persistence for Rate.
//
// Missing records come back as zero-value entities with a nil error; the
// use case layer maps that to its NotFound sentinel.
type IRateRepository interface {
	Create(ctx context.Context, r entities.Rate) (entities.Rate, error)
	GetByID(ctx context.Context, id string) (entities.Rate, error)
	List(ctx context.Context, f RateFilter) ([]entities.Rate, error)
	Update(ctx context.Context, updated entities.Rate) (entities.Rate, error)
}
