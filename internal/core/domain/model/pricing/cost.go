package pricing

import (
	"github.com/shopspring/decimal"
)

// Cost holds the derived monetary cost of shipping a parcel.
// The cedi amount is always the USD amount converted at the exchange rate in
// effect when the cost was computed.
type Cost struct {
	usd   decimal.Decimal
	cedis decimal.Decimal
}

// ZeroCost returns a zero-valued cost, used for items that are not yet
// priceable (untagged, or missing the measurement their method requires).
func ZeroCost() Cost {
	return Cost{usd: decimal.Zero, cedis: decimal.Zero}
}

// RestoreCost reconstructs a Cost from persisted amounts. Used by storage
// adapters; costs computed inside the domain always go through ComputeCost.
func RestoreCost(usd, cedis decimal.Decimal) Cost {
	return Cost{usd: usd, cedis: cedis}
}

// USD returns the cost in US dollars at full precision.
func (c Cost) USD() decimal.Decimal {
	return c.usd
}

// Cedis returns the cost in Ghana cedis at full precision.
func (c Cost) Cedis() decimal.Decimal {
	return c.cedis
}

// IsZero reports whether the cost is zero in both currencies.
func (c Cost) IsZero() bool {
	return c.usd.IsZero() && c.cedis.IsZero()
}

// ComputeCost computes the shipment cost for a parcel from its shipping
// method, cubic volume, and weight, using the supplied live rates.
//
// Sea freight prices by volume (usd = cbm × CBMRateUSD), air freight by
// weight in kilograms (usd = kg × WeightRateUSDPerKg). The cedi amount is
// usd × USDToGHSRate. When the method's required input is absent or zero,
// including MethodUnknown for untagged items, the cost is zero; an
// unmeasured parcel is not an error.
//
// The weight pointer follows the item model, where weight is optional; a nil
// weight prices air freight at zero.
func ComputeCost(method Method, cbm float64, weight *Weight, rates Rates) (Cost, error) {
	if err := rates.Validate(); err != nil {
		return Cost{}, err
	}

	var usd decimal.Decimal
	switch method {
	case Sea:
		if cbm <= 0 {
			return ZeroCost(), nil
		}
		usd = decimal.NewFromFloat(cbm).Mul(rates.CBMRateUSD())
	case Air:
		if weight == nil || !weight.IsMeasured() {
			return ZeroCost(), nil
		}
		usd = decimal.NewFromFloat(weight.Kilograms()).Mul(rates.WeightRateUSDPerKg())
	default:
		return ZeroCost(), nil
	}

	return Cost{
		usd:   usd,
		cedis: usd.Mul(rates.USDToGHSRate()),
	}, nil
}
