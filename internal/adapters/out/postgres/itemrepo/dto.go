// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the item domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/item"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
)

// ItemDTO represents the database structure for persisting item aggregates.
// Statuses and shipping methods are stored as their wire strings so raw read
// queries stay legible; money columns are exact numerics. Measurements are
// flattened with the unit string doubling as the null marker: an empty
// dimension_unit means the item was never measured for volume.
type ItemDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber  string     `gorm:"type:varchar(64);not null;index"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	ContainerNumber string     `gorm:"type:varchar(64);not null;default:'';index"`
	ReceivingDate   time.Time  `gorm:"not null"`
	Length          float64
	Width           float64
	Height          float64
	DimensionUnit   string          `gorm:"type:varchar(8);not null;default:''"`
	WeightValue     float64         `gorm:"column:weight_value"`
	WeightUnit      string          `gorm:"type:varchar(8);not null;default:''"`
	ShippingMethod  string          `gorm:"type:varchar(16);not null;default:'unknown'"`
	CBM             float64         `gorm:"column:cbm"`
	CostUSD         decimal.Decimal `gorm:"column:cost_usd;type:numeric(14,4);not null"`
	CostCedis       decimal.Decimal `gorm:"column:cost_cedis;type:numeric(14,4);not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	IsDamaged       bool            `gorm:"not null;default:false"`
	IsMissing       bool            `gorm:"not null;default:false"`
	Photos          []PhotoDTO      `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// PhotoDTO represents the database structure for persisting item photos.
// Photos are identified by their item and display order; the order column is
// named photo_order because "order" is reserved in SQL.
type PhotoDTO struct {
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhotoOrder int       `gorm:"column:photo_order;primaryKey;autoIncrement:false"`
	URL        string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for photo entities.
// Overrides GORM's default naming convention to use "item_photos".
func (PhotoDTO) TableName() string {
	return "item_photos"
}

// fromDomain converts an item domain aggregate to its database representation.
// Maps all item attributes including optional measurements and photos.
func fromDomain(aggregate *item.Item) ItemDTO {
	itemID := aggregate.ID().Bytes()

	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	dto := ItemDTO{
		ID:              itemID,
		TrackingNumber:  aggregate.TrackingNumber(),
		CustomerID:      customerID,
		ContainerNumber: aggregate.ContainerNumber(),
		ReceivingDate:   aggregate.ReceivingDate(),
		ShippingMethod:  aggregate.ShippingMethod().String(),
		CBM:             aggregate.CBM(),
		CostUSD:         aggregate.Cost().USD(),
		CostCedis:       aggregate.Cost().Cedis(),
		Status:          aggregate.Status().String(),
		IsDamaged:       aggregate.IsDamaged(),
		IsMissing:       aggregate.IsMissing(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if dims := aggregate.Dimensions(); dims != nil {
		dto.Length = dims.Length()
		dto.Width = dims.Width()
		dto.Height = dims.Height()
		dto.DimensionUnit = dims.Unit().String()
	}

	if weight := aggregate.Weight(); weight != nil {
		dto.WeightValue = weight.Value()
		dto.WeightUnit = weight.Unit().String()
	}

	for _, photo := range aggregate.Photos() {
		dto.Photos = append(dto.Photos, PhotoDTO{
			ItemID:     itemID,
			PhotoOrder: photo.Order(),
			URL:        photo.URL(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the complete aggregate including measurements, derived cost
// fields, and photos using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	var dimensions *pricing.Dimensions
	if dto.DimensionUnit != "" {
		unit, unitErr := pricing.DimensionUnitFromString(dto.DimensionUnit)
		if unitErr != nil {
			return nil, unitErr
		}
		dims, dimsErr := pricing.NewDimensions(dto.Length, dto.Width, dto.Height, unit)
		if dimsErr != nil {
			return nil, dimsErr
		}
		dimensions = &dims
	}

	var weight *pricing.Weight
	if dto.WeightUnit != "" {
		unit, unitErr := pricing.WeightUnitFromString(dto.WeightUnit)
		if unitErr != nil {
			return nil, unitErr
		}
		w, weightErr := pricing.NewWeight(dto.WeightValue, unit)
		if weightErr != nil {
			return nil, weightErr
		}
		weight = &w
	}

	shippingMethod := pricing.MethodUnknown
	if dto.ShippingMethod != pricing.MethodUnknown.String() {
		if shippingMethod, err = pricing.MethodFromString(dto.ShippingMethod); err != nil {
			return nil, err
		}
	}

	status, err := item.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	photos := make([]item.Photo, 0, len(dto.Photos))
	for _, photoDTO := range dto.Photos {
		photo, photoErr := item.NewPhoto(photoDTO.URL, photoDTO.PhotoOrder)
		if photoErr != nil {
			return nil, photoErr
		}
		photos = append(photos, photo)
	}

	return item.RestoreItem(
		id,
		dto.TrackingNumber,
		customerID,
		dto.ContainerNumber,
		dto.ReceivingDate,
		dimensions,
		weight,
		shippingMethod,
		dto.CBM,
		pricing.RestoreCost(dto.CostUSD, dto.CostCedis),
		status,
		dto.IsDamaged,
		dto.IsMissing,
		photos,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
