package pricing

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

// WeightUnit is the unit of measure for parcel weight.
type WeightUnit int

const (
	// WeightUnitUnknown represents an invalid or undefined unit.
	WeightUnitUnknown WeightUnit = iota

	// Kilograms is the unit air freight is priced in.
	Kilograms

	// Pounds are converted to kilograms before pricing.
	Pounds
)

// kilogramsPerPound is the exact conversion factor defined by the
// international avoirdupois pound.
const kilogramsPerPound = 0.45359237

// ErrWeightIsNotConstructed is returned when a Weight was not created through
// the NewWeight constructor.
var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight constructor")

func getWeightUnitStrings() map[WeightUnit]string {
	return map[WeightUnit]string{
		WeightUnitUnknown: "unknown",
		Kilograms:         "kg",
		Pounds:            "lbs",
	}
}

// WeightUnitFromString parses a weight unit from its wire representation
// ("kg" or "lbs").
func WeightUnitFromString(s string) (WeightUnit, error) {
	for unit, str := range getWeightUnitStrings() {
		if str == s && unit != WeightUnitUnknown {
			return unit, nil
		}
	}
	return WeightUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"weightUnit",
		fmt.Errorf("%q is not a valid weight unit", s),
	)
}

// Validate checks that the unit is a supported weight unit.
func (u WeightUnit) Validate() error {
	if u != Kilograms && u != Pounds {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightUnit",
			fmt.Errorf("%d is not a valid weight unit", u),
		)
	}
	return nil
}

// String returns the wire representation of the unit.
func (u WeightUnit) String() string {
	if str, ok := getWeightUnitStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// Weight is a value object carrying a parcel's weight and its unit.
// Zero weight is permitted (the parcel has not been weighed yet); negative
// weight is rejected at construction.
type Weight struct {
	value         float64
	unit          WeightUnit
	isConstructed bool
}

// NewWeight creates a Weight value object.
// The unit must be valid and the value may not be negative.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	if err := unit.Validate(); err != nil {
		return Weight{}, err
	}

	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not a valid weight", value),
		)
	}

	return Weight{value: value, unit: unit, isConstructed: true}, nil
}

// Validate ensures the Weight was created via NewWeight.
func (w Weight) Validate() error {
	if !w.isConstructed {
		return ErrWeightIsNotConstructed
	}
	return nil
}

// Value returns the weight in its original unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the unit of measure.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// IsMeasured reports whether the weight is strictly positive.
// Air-freight tagging requires a measured weight.
func (w Weight) IsMeasured() bool {
	return w.value > 0
}

// Kilograms returns the weight converted to kilograms, the unit air freight
// is priced in.
func (w Weight) Kilograms() float64 {
	if w.unit == Pounds {
		return w.value * kilogramsPerPound
	}
	return w.value
}
