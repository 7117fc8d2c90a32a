package pricing

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

// DimensionUnit is the unit of measure for parcel dimensions.
type DimensionUnit int

const (
	// DimensionUnitUnknown represents an invalid or undefined unit.
	DimensionUnitUnknown DimensionUnit = iota

	// Centimeters measures dimensions in cm; volume converts to m³ by
	// dividing by 1,000,000.
	Centimeters

	// Inches measures dimensions in inches; volume converts to m³ by
	// dividing by 61,024.
	Inches
)

const (
	cubicCentimetersPerCubicMeter = 1_000_000
	cubicInchesPerCubicMeter      = 61_024
)

// ErrDimensionsAreNotConstructed is returned when Dimensions were not created
// through the NewDimensions constructor.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

func getDimensionUnitStrings() map[DimensionUnit]string {
	return map[DimensionUnit]string{
		DimensionUnitUnknown: "unknown",
		Centimeters:          "cm",
		Inches:               "in",
	}
}

// DimensionUnitFromString parses a dimension unit from its wire
// representation ("cm" or "in"). "inches" is accepted as an alias, since
// supplier manifests commonly spell the unit out; String() still renders
// the canonical "in".
func DimensionUnitFromString(s string) (DimensionUnit, error) {
	if s == "inches" {
		return Inches, nil
	}
	for unit, str := range getDimensionUnitStrings() {
		if str == s && unit != DimensionUnitUnknown {
			return unit, nil
		}
	}
	return DimensionUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"dimensionUnit",
		fmt.Errorf("%q is not a valid dimension unit", s),
	)
}

// Validate checks that the unit is a supported dimension unit.
func (u DimensionUnit) Validate() error {
	if u != Centimeters && u != Inches {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensionUnit",
			fmt.Errorf("%d is not a valid dimension unit", u),
		)
	}
	return nil
}

// String returns the wire representation of the unit.
func (u DimensionUnit) String() string {
	if str, ok := getDimensionUnitStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// Dimensions is a value object carrying the measured length, width, and
// height of a parcel together with their unit.
//
// Dimensions may legitimately hold zero values: a parcel that has been
// intaken but not yet measured computes a CBM of zero rather than failing.
// Negative values are rejected at construction.
type Dimensions struct {
	length        float64
	width         float64
	height        float64
	unit          DimensionUnit
	isConstructed bool
}

// NewDimensions creates a Dimensions value object.
// The unit must be valid and no dimension may be negative.
func NewDimensions(length, width, height float64, unit DimensionUnit) (Dimensions, error) {
	if err := unit.Validate(); err != nil {
		return Dimensions{}, err
	}

	if err := errors.Join(
		validateDimension("length", length),
		validateDimension("width", width),
		validateDimension("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length:        length,
		width:         width,
		height:        height,
		unit:          unit,
		isConstructed: true,
	}, nil
}

func validateDimension(name string, value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a valid dimension", value))
	}
	return nil
}

// Validate ensures the Dimensions were created via NewDimensions.
func (d Dimensions) Validate() error {
	if !d.isConstructed {
		return ErrDimensionsAreNotConstructed
	}
	return nil
}

// Length returns the parcel length.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the parcel width.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the parcel height.
func (d Dimensions) Height() float64 {
	return d.height
}

// Unit returns the unit of measure.
func (d Dimensions) Unit() DimensionUnit {
	return d.unit
}

// IsMeasured reports whether all three dimensions are strictly positive.
// Sea-freight tagging requires measured dimensions.
func (d Dimensions) IsMeasured() bool {
	return d.length > 0 && d.width > 0 && d.height > 0
}

// CBM computes the cubic volume of the parcel in cubic meters, rounded to
// six decimal places.
//
// If any dimension is not strictly positive, the parcel is treated as "not
// yet measurable" and the result is 0 rather than an error.
func (d Dimensions) CBM() float64 {
	if !d.IsMeasured() {
		return 0
	}

	volume := d.length * d.width * d.height

	var cbm float64
	switch d.unit {
	case Inches:
		cbm = volume / cubicInchesPerCubicMeter
	default:
		cbm = volume / cubicCentimetersPerCubicMeter
	}

	return math.Round(cbm*1e6) / 1e6
}
