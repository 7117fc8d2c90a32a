package item

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of an item as it moves from the
// China receiving warehouse to customer pickup in Ghana.
//
// Lifecycle order:
//
//	china_warehouse → in_transit → arrived_ghana → ready_for_pickup → delivered / picked_up
//
// Progression is not strictly linear: operators and bulk tools may set the
// status directly to any later or equal state (a CSV import can move items
// straight to ready_for_pickup). What the state machine forbids is moving
// backward: the only way back to china_warehouse is unloading the item
// from its container.
//
// Status is a value object that validates transitions and provides string
// representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// ChinaWarehouse is the initial status assigned at intake.
	// Items in this status have not been loaded into a container.
	ChinaWarehouse

	// InTransit indicates the item is loaded into a container that is on
	// its way to Ghana. Entered as a side effect of container loading.
	InTransit

	// ArrivedGhana indicates the item's container has arrived at the
	// Ghana warehouse.
	ArrivedGhana

	// ReadyForPickup indicates the item has been sorted and the customer
	// may collect it.
	ReadyForPickup

	// Delivered indicates the item was delivered to the customer.
	Delivered

	// PickedUp indicates the customer collected the item in person.
	PickedUp
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		ChinaWarehouse: "china_warehouse",
		InTransit:      "in_transit",
		ArrivedGhana:   "arrived_ghana",
		ReadyForPickup: "ready_for_pickup",
		Delivered:      "delivered",
		PickedUp:       "picked_up",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		ChinaWarehouse: "china_warehouse",
		InTransit:      "in_transit",
		ArrivedGhana:   "arrived_ghana",
		ReadyForPickup: "ready_for_pickup",
		Delivered:      "delivered",
		PickedUp:       "picked_up",
	}
}

// StatusFromString parses a status from its wire representation
// (e.g. "arrived_ghana"). Returns a validation error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// HasLeftOrigin reports whether the status is past china_warehouse.
// Items past the origin warehouse must carry a container number.
func (s Status) HasLeftOrigin() bool {
	return s > ChinaWarehouse
}

// Advance transitions the status to target.
//
// Any later or equal status is a valid target (operators may skip
// intermediate states; setting the current status again is a no-op).
// Moving backward is not allowed through this path; unloading from a
// container is the only operation that resets status.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if target is invalid or earlier than the current status
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target < s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move back from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
