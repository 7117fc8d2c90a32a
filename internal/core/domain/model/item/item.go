package item

import (
	"errors"
	"sort"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for item operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
	// ErrTrackingNumberIsRequired is returned when an item is created or tagged without a tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("trackingNumber")
	// ErrContainerNumberIsRequired is returned when loading an item without a container number.
	ErrContainerNumberIsRequired = errs.NewValueIsRequiredError("containerNumber")
	// ErrItemNotInContainer is returned when unloading an item that has no container assignment.
	ErrItemNotInContainer = errors.New("item is not loaded into a container")
	// ErrDimensionsAreRequired is returned when tagging a sea-freight item without measured dimensions.
	ErrDimensionsAreRequired = errs.NewValueIsRequiredError("dimensions")
	// ErrWeightIsRequired is returned when tagging an air-freight item without a measured weight.
	ErrWeightIsRequired = errs.NewValueIsRequiredError("weight")
)

// Item represents a physical parcel in the freight pipeline. It is the
// aggregate root that manages the parcel lifecycle from China intake through
// container shipment to Ghana and customer pickup.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty tracking number
//     (temporary tracking values are permitted during intake)
//   - The receiving date is set at creation and immutable
//   - A container assignment implies the item has left the origin
//     warehouse, and leaving the origin warehouse requires a container
//   - cbm and cost fields are derived: recomputed from the current
//     measurements and shipping method, never edited independently
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	// id is the store-assigned unique identifier, immutable
	id kernel.UUID
	// trackingNumber identifies the parcel to customers and CSV imports
	trackingNumber string
	// customerID is the owning customer, nil while the item is untagged
	customerID *kernel.UUID
	// containerNumber is the shipment container, empty while at origin
	containerNumber string
	// receivingDate is when the parcel reached the China warehouse
	receivingDate time.Time
	// dimensions are required for sea freight, nil until measured
	dimensions *pricing.Dimensions
	// weight is required for air freight, nil until weighed
	weight *pricing.Weight
	// shippingMethod is chosen at tagging time
	shippingMethod pricing.Method
	// cbm is the derived cubic volume, zero for air freight
	cbm float64
	// cost is the derived shipment cost in USD and cedis
	cost pricing.Cost
	// status is the current lifecycle state
	status Status
	// isDamaged and isMissing are operational flags orthogonal to status
	isDamaged bool
	isMissing bool
	// photos are uploaded images ordered by their explicit order value
	photos []Photo
	// createdAt and updatedAt are record timestamps; updatedAt is the
	// sort key for "most recently tagged" views
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a parcel record at China intake.
//
// Intake records are minimal: a tracking number (temporary values are
// allowed, uniqueness is only expected once tagged), the receiving date,
// and the photos uploaded by the intake team. The item starts in
// china_warehouse with no customer, no container, and zero cost.
func NewItem(id kernel.UUID, trackingNumber string, receivingDate time.Time, photos []Photo) (*Item, error) {
	now := time.Now().UTC()

	item := &Item{
		status:    ChinaWarehouse,
		cost:      pricing.ZeroCost(),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setTrackingNumber(trackingNumber),
		item.setReceivingDate(receivingDate),
		item.setPhotos(photos),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// Unlike NewItem, it restores the full persisted state including status,
// container assignment, measurements, derived cost fields, and timestamps.
func RestoreItem(
	id kernel.UUID,
	trackingNumber string,
	customerID *kernel.UUID,
	containerNumber string,
	receivingDate time.Time,
	dimensions *pricing.Dimensions,
	weight *pricing.Weight,
	shippingMethod pricing.Method,
	cbm float64,
	cost pricing.Cost,
	status Status,
	isDamaged bool,
	isMissing bool,
	photos []Photo,
	createdAt time.Time,
	updatedAt time.Time,
) (*Item, error) {
	item := &Item{
		customerID:      customerID,
		containerNumber: containerNumber,
		dimensions:      dimensions,
		weight:          weight,
		shippingMethod:  shippingMethod,
		cbm:             cbm,
		cost:            cost,
		isDamaged:       isDamaged,
		isMissing:       isMissing,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setTrackingNumber(trackingNumber),
		item.setReceivingDate(receivingDate),
		item.setPhotos(photos),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || i.guard.Validate(ErrItemIsNotConstructed) != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// TrackingNumber returns the parcel tracking number.
func (i *Item) TrackingNumber() string {
	return i.trackingNumber
}

// CustomerID returns the owning customer's ID, or nil while untagged.
func (i *Item) CustomerID() *kernel.UUID {
	return i.customerID
}

// IsTagged reports whether a customer has been attached to the item.
func (i *Item) IsTagged() bool {
	return i.customerID != nil
}

// ContainerNumber returns the container assignment, empty while at origin.
func (i *Item) ContainerNumber() string {
	return i.containerNumber
}

// ReceivingDate returns the date the parcel reached the China warehouse.
func (i *Item) ReceivingDate() time.Time {
	return i.receivingDate
}

// Dimensions returns the measured dimensions, or nil.
func (i *Item) Dimensions() *pricing.Dimensions {
	return i.dimensions
}

// Weight returns the measured weight, or nil.
func (i *Item) Weight() *pricing.Weight {
	return i.weight
}

// ShippingMethod returns the shipping method chosen at tagging.
func (i *Item) ShippingMethod() pricing.Method {
	return i.shippingMethod
}

// CBM returns the derived cubic volume in cubic meters.
func (i *Item) CBM() float64 {
	return i.cbm
}

// Cost returns the derived shipment cost.
func (i *Item) Cost() pricing.Cost {
	return i.cost
}

// Status returns the current lifecycle status.
func (i *Item) Status() Status {
	return i.status
}

// IsDamaged reports whether the parcel is flagged as damaged.
func (i *Item) IsDamaged() bool {
	return i.isDamaged
}

// IsMissing reports whether the parcel is flagged as missing.
func (i *Item) IsMissing() bool {
	return i.isMissing
}

// Photos returns the item's photos sorted by their explicit order value.
func (i *Item) Photos() []Photo {
	photos := make([]Photo, len(i.photos))
	copy(photos, i.photos)
	sort.SliceStable(photos, func(a, b int) bool {
		return photos[a].Order() < photos[b].Order()
	})
	return photos
}

// FirstPhoto returns the photo with the lowest order value, or nil when the
// item has no photos. This is the image shown in list views.
func (i *Item) FirstPhoto() *Photo {
	photos := i.Photos()
	if len(photos) == 0 {
		return nil
	}
	return &photos[0]
}

// CreatedAt returns the record creation timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Tag attaches the customer, shipping method, and the measurement required
// by that method to an intake item.
//
// Preconditions enforced before any field changes:
//   - tracking number and customer ID must be non-empty
//   - sea freight requires all three dimensions measured (> 0)
//   - air freight requires a measured weight (> 0)
//
// Violations are validation failures: the item is left unchanged and a
// field-level reason is returned. Retagging an already tagged item is
// allowed and replaces the previous tagging.
func (i *Item) Tag(
	customerID kernel.UUID,
	method pricing.Method,
	dimensions *pricing.Dimensions,
	weight *pricing.Weight,
) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := method.Validate(); err != nil {
		return err
	}

	switch method {
	case pricing.Sea:
		if dimensions == nil || !dimensions.IsMeasured() {
			return ErrDimensionsAreRequired
		}
	case pricing.Air:
		if weight == nil || !weight.IsMeasured() {
			return ErrWeightIsRequired
		}
	}

	i.customerID = &customerID
	i.shippingMethod = method
	i.dimensions = dimensions
	i.weight = weight
	i.touch()
	return nil
}

// LoadIntoContainer assigns the item to a shipment container and moves it
// to in_transit. Setting the container number and the status change are one
// coupled operation, not independent field edits. Loading an item that is
// already in a container reassigns it (last write wins).
func (i *Item) LoadIntoContainer(containerNumber string) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	i.containerNumber = containerNumber
	i.status = InTransit
	i.touch()
	return nil
}

// UnloadFromContainer removes the item from its container and resets it to
// china_warehouse. This is the only operation that moves status backward.
func (i *Item) UnloadFromContainer() error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.containerNumber == "" {
		return ErrItemNotInContainer
	}

	i.containerNumber = ""
	i.status = ChinaWarehouse
	i.touch()
	return nil
}

// ChangeStatus advances the item to any later or equal lifecycle status.
//
// Leaving china_warehouse requires a container assignment; use
// LoadIntoContainer for that first step. Moving backward is rejected;
// unloading from a container is the only reset path.
func (i *Item) ChangeStatus(target Status) error {
	if err := i.Validate(); err != nil {
		return err
	}

	newStatus, err := i.status.Advance(target)
	if err != nil {
		return err
	}

	if newStatus.HasLeftOrigin() && i.containerNumber == "" {
		return ErrContainerNumberIsRequired
	}

	i.status = newStatus
	i.touch()
	return nil
}

// MarkArrived forces the status to arrived_ghana regardless of the current
// status. Used by container arrival, which stamps every member of a
// container; an item an operator had already advanced past arrival is
// pulled back to arrived_ghana. Only items already at arrived_ghana report
// no change, which makes repeating a container arrival harmless.
//
// Returns true when the status actually changed.
func (i *Item) MarkArrived() bool {
	if i.status == ArrivedGhana {
		return false
	}

	i.status = ArrivedGhana
	i.touch()
	return true
}

// SetDamaged toggles the damaged flag. Flags are orthogonal to status and
// gate no other transition.
func (i *Item) SetDamaged(damaged bool) {
	i.isDamaged = damaged
	i.touch()
}

// SetMissing toggles the missing flag.
func (i *Item) SetMissing(missing bool) {
	i.isMissing = missing
	i.touch()
}

// SetPhotos replaces the item's photo list.
func (i *Item) SetPhotos(photos []Photo) error {
	if err := i.setPhotos(photos); err != nil {
		return err
	}
	i.touch()
	return nil
}

// Reprice recomputes the derived cbm and cost fields from the item's
// current measurements and shipping method, using the supplied live rates.
//
// Called after every successful mutation so the stored derived fields are
// always consistent with the fields they derive from. The cbm is zero for
// air freight and for unmeasured parcels.
func (i *Item) Reprice(rates pricing.Rates) error {
	if err := i.Validate(); err != nil {
		return err
	}

	cbm := 0.0
	if i.dimensions != nil && i.shippingMethod != pricing.Air {
		cbm = i.dimensions.CBM()
	}

	cost, err := pricing.ComputeCost(i.shippingMethod, cbm, i.weight, rates)
	if err != nil {
		return err
	}

	i.cbm = cbm
	i.cost = cost
	i.touch()
	return nil
}

// touch bumps the updatedAt timestamp after a successful mutation.
func (i *Item) touch() {
	i.updatedAt = time.Now().UTC()
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	i.trackingNumber = trackingNumber
	return nil
}

func (i *Item) setReceivingDate(receivingDate time.Time) error {
	if receivingDate.IsZero() {
		return errs.NewValueIsRequiredError("receivingDate")
	}
	i.receivingDate = receivingDate
	return nil
}

func (i *Item) setPhotos(photos []Photo) error {
	for _, photo := range photos {
		if err := photo.Validate(); err != nil {
			return err
		}
	}
	i.photos = make([]Photo, len(photos))
	copy(i.photos, photos)
	return nil
}
