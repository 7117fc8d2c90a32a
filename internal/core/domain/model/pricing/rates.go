package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"freight/internal/pkg/errs"
)

// ErrRatesAreNotConstructed is returned when Rates were not created through
// the NewRates constructor.
var ErrRatesAreNotConstructed = errors.New("Rates must be created via NewRates constructor")

// Rates carries the live freight and exchange rates used by cost
// computation. Rates are admin-editable settings: they are read fresh from
// the settings store for every operation and must never be cached across
// invocations.
type Rates struct {
	cbmRateUSD         decimal.Decimal
	weightRateUSDPerKg decimal.Decimal
	usdToGHSRate       decimal.Decimal
	isConstructed      bool
}

// NewRates creates a Rates value object. All three rates must be
// non-negative.
func NewRates(cbmRateUSD, weightRateUSDPerKg, usdToGHSRate decimal.Decimal) (Rates, error) {
	if err := errors.Join(
		validateRate("cbmRateUSD", cbmRateUSD),
		validateRate("weightRateUSDPerKg", weightRateUSDPerKg),
		validateRate("usdToGhsRate", usdToGHSRate),
	); err != nil {
		return Rates{}, err
	}

	return Rates{
		cbmRateUSD:         cbmRateUSD,
		weightRateUSDPerKg: weightRateUSDPerKg,
		usdToGHSRate:       usdToGHSRate,
		isConstructed:      true,
	}, nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", rate))
	}
	return nil
}

// Validate ensures the Rates were created via NewRates.
func (r Rates) Validate() error {
	if !r.isConstructed {
		return ErrRatesAreNotConstructed
	}
	return nil
}

// CBMRateUSD returns the sea-freight rate in USD per cubic meter.
func (r Rates) CBMRateUSD() decimal.Decimal {
	return r.cbmRateUSD
}

// WeightRateUSDPerKg returns the air-freight rate in USD per kilogram.
func (r Rates) WeightRateUSDPerKg() decimal.Decimal {
	return r.weightRateUSDPerKg
}

// USDToGHSRate returns the USD to Ghana cedi exchange rate.
func (r Rates) USDToGHSRate() decimal.Decimal {
	return r.usdToGHSRate
}
