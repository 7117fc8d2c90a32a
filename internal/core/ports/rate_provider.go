package ports

import (
	"context"

	"freight/internal/core/domain/model/pricing"
)

// RateProvider supplies the current pricing rates.
//
// Implementations must read the rates fresh on every call: rate changes made
// by administrators take effect on the next cost computation, so callers
// never cache the returned value across operations.
type RateProvider interface {
	// Get returns the currently configured rates.
	Get(ctx context.Context) (pricing.Rates, error)
}

// RateStore extends RateProvider with the administrative write side.
// Saving new rates does not touch stored item costs; callers follow up with
// a cost recomputation sweep.
type RateStore interface {
	RateProvider

	// Save replaces the configured rates.
	Save(ctx context.Context, rates pricing.Rates) error
}
