package itemrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item to the database.
// The stored photo set is replaced wholesale so removed photos don't linger.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("item_id = ?", dto.ID).
		Delete(&PhotoDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).Preload("Photos").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves an item by its carrier tracking number.
// Temporary tracking numbers may collide before tagging; the oldest intake
// record wins so manifests resolve deterministically.
func (r *GormItemRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*item.Item, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Order("created_at ASC").
		First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByContainer retrieves all items loaded into the given container.
func (r *GormItemRepository) GetByContainer(ctx context.Context, containerNumber string) ([]*item.Item, error) {
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Find(&dtos, "container_number = ?", containerNumber).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// GetAll retrieves every item in storage.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Preload("Photos").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// Delete removes an item and its photos from the database.
func (r *GormItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("item_id = ?", id.Bytes()).
		Delete(&PhotoDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

func (r *GormItemRepository) toDomainSlice(dtos []ItemDTO) ([]*item.Item, error) {
	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, aggregate)
	}

	return items, nil
}
