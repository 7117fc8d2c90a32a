// Package item contains the Item aggregate: a physical parcel moving from
// the China receiving warehouse through container shipment to Ghana and on
// to customer pickup.
//
// The aggregate owns the parcel's lifecycle status, its container
// assignment, its measurements, and its derived cost fields. All mutations
// go through validated methods that enforce the field preconditions of each
// operation:
//
//   - Tagging attaches the customer, shipping method, and the measurement
//     the method requires (dimensions for sea, weight for air).
//   - Loading into a container sets the container number and moves the item
//     to in_transit as one coupled operation; unloading clears the number
//     and resets the item to china_warehouse.
//   - Status may be advanced to any later or equal state, never backward;
//     leaving the origin warehouse requires a container assignment.
//   - Damaged/missing flags toggle independently of status.
//
// Derived fields (cbm, costUSD, costCedis) are never edited directly: after
// every successful mutation the caller reprices the item with the live rates
// so the stored cost always reflects the post-mutation field values.
package item
