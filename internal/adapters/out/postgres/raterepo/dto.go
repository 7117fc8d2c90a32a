// Package raterepo persists the pricing rates and serves them to the domain.
// Rates live in a single settings row that administrators update; every read
// goes to the database so a rate change is visible to the very next cost
// computation.
package raterepo

import (
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/pricing"
)

// ratesRowID is the primary key of the single settings row.
const ratesRowID = 1

// RatesDTO represents the database structure for the pricing rates row.
type RatesDTO struct {
	ID                 int             `gorm:"primaryKey"`
	CBMRateUSD         decimal.Decimal `gorm:"column:cbm_rate_usd;type:numeric(14,4);not null"`
	WeightRateUSDPerKg decimal.Decimal `gorm:"column:weight_rate_usd_per_kg;type:numeric(14,4);not null"`
	USDToGHSRate       decimal.Decimal `gorm:"column:usd_to_ghs_rate;type:numeric(14,4);not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for the rates row.
// Overrides GORM's default naming convention to use "pricing_rates".
func (RatesDTO) TableName() string {
	return "pricing_rates"
}

// toDomain converts the database row to the Rates value object.
func toDomain(dto RatesDTO) (pricing.Rates, error) {
	return pricing.NewRates(dto.CBMRateUSD, dto.WeightRateUSDPerKg, dto.USDToGHSRate)
}

// fromDomain converts a Rates value object to its database representation.
func fromDomain(rates pricing.Rates) RatesDTO {
	return RatesDTO{
		ID:                 ratesRowID,
		CBMRateUSD:         rates.CBMRateUSD(),
		WeightRateUSDPerKg: rates.WeightRateUSDPerKg(),
		USDToGHSRate:       rates.USDToGHSRate(),
		UpdatedAt:          time.Now().UTC(),
	}
}
