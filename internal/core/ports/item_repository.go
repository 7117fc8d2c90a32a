// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
// Provides methods for storing, retrieving, and querying item entities
// with their complete state including photos.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate.
	// The item must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	// Returns the complete item with its photos ordered by display order.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByTrackingNumber retrieves an item aggregate by its carrier
	// tracking number. Tracking numbers are the shared identifier between
	// this system and supplier manifests, so bulk flows key on them.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*item.Item, error)

	// GetByContainer retrieves all items loaded into the given container.
	// Containers are virtual: this is the membership query that defines them.
	GetByContainer(ctx context.Context, containerNumber string) ([]*item.Item, error)

	// GetAll retrieves every item aggregate in storage.
	// Used by maintenance flows that must touch the whole inventory.
	GetAll(ctx context.Context) ([]*item.Item, error)

	// Delete removes an item aggregate and its photos from storage.
	// Removal is permanent. Returns ObjectNotFoundError if the item does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
