package raterepo

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"
)

// GormRateRepository implements RateStore using GORM.
type GormRateRepository struct {
	db *gorm.DB
}

// NewGormRateRepository creates a new GORM rate repository.
func NewGormRateRepository(db *gorm.DB) *GormRateRepository {
	return &GormRateRepository{db: db}
}

// Get reads the settings row and returns the configured rates.
// The row is read on every call so rate edits apply immediately.
func (r *GormRateRepository) Get(ctx context.Context) (pricing.Rates, error) {
	var dto RatesDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", ratesRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Rates{}, errs.NewObjectNotFoundError("pricingRates", strconv.Itoa(ratesRowID))
		}
		return pricing.Rates{}, err
	}

	return toDomain(dto)
}

// Save upserts the settings row with the given rates.
func (r *GormRateRepository) Save(ctx context.Context, rates pricing.Rates) error {
	if err := rates.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rates)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
