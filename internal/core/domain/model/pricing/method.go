package pricing

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Method represents the shipping method chosen for a parcel at tagging time.
// The method determines both the cost formula and which measurements are
// required: sea freight requires dimensions, air freight requires weight.
type Method int

const (
	// MethodUnknown represents an item that has not been tagged yet.
	// Untagged items have no cost.
	MethodUnknown Method = iota

	// Sea prices the parcel by cubic volume (CBM).
	Sea

	// Air prices the parcel by weight in kilograms.
	Air
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		Sea:           "sea",
		Air:           "air",
	}
}

// MethodFromString parses a shipping method from its wire representation
// ("sea" or "air"). Returns a validation error for any other value.
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shippingMethod",
		fmt.Errorf("%q is not a valid shipping method", s),
	)
}

// Validate checks that the method is one of the supported shipping methods.
// MethodUnknown is invalid: a tagged item must always carry sea or air.
func (m Method) Validate() error {
	if m != Sea && m != Air {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingMethod",
			fmt.Errorf("%d is not a valid shipping method", m),
		)
	}
	return nil
}

// String returns the wire representation of the method.
// Implements fmt.Stringer and is safe on any value.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
