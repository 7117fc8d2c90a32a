package http

// CreateItemRequest is the payload for registering a parcel at the China
// warehouse. The receiving date is RFC 3339; omitted dates default to now.
type CreateItemRequest struct {
	TrackingNumber string   `json:"trackingNumber" validate:"required,max=64"`
	ReceivingDate  string   `json:"receivingDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PhotoURLs      []string `json:"photoUrls" validate:"omitempty,dive,url"`
}

// DimensionsRequest carries carton measurements for sea freight tagging.
type DimensionsRequest struct {
	Length float64 `json:"length" validate:"required,gt=0"`
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
	Unit   string  `json:"unit" validate:"required,oneof=cm in inches"`
}

// WeightRequest carries the measured weight for air freight tagging.
type WeightRequest struct {
	Value float64 `json:"value" validate:"required,gt=0"`
	Unit  string  `json:"unit" validate:"required,oneof=kg lbs"`
}

// TagItemRequest assigns an item to a customer with a shipping method.
// Sea freight requires dimensions, air freight requires weight.
type TagItemRequest struct {
	CustomerID     string             `json:"customerId" validate:"required,uuid"`
	ShippingMethod string             `json:"shippingMethod" validate:"required,oneof=sea air"`
	Dimensions     *DimensionsRequest `json:"dimensions,omitempty" validate:"omitempty"`
	Weight         *WeightRequest     `json:"weight,omitempty" validate:"omitempty"`
}

// LoadItemsRequest names the items to load into a container.
type LoadItemsRequest struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
}

// UpdateItemStatusRequest moves an item to a later lifecycle status.
type UpdateItemStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetItemFlagRequest toggles the damaged or missing flag on an item.
type SetItemFlagRequest struct {
	Flag  string `json:"flag" validate:"required,oneof=damaged missing"`
	Value bool   `json:"value"`
}

// BatchRowRequest is one row of a bulk update keyed by tracking number.
// Nil fields are left untouched; an empty container number unloads the item.
type BatchRowRequest struct {
	TrackingNumber  string  `json:"trackingNumber" validate:"required,max=64"`
	Status          *string `json:"status,omitempty"`
	ContainerNumber *string `json:"containerNumber,omitempty"`
	Damaged         *bool   `json:"damaged,omitempty"`
	Missing         *bool   `json:"missing,omitempty"`
}

// ApplyBatchRequest is a bulk update, typically parsed from an uploaded
// supplier manifest.
type ApplyBatchRequest struct {
	Rows []BatchRowRequest `json:"rows" validate:"required,min=1,dive"`
}

// UpdateRatesRequest replaces the pricing rates used for cost computation.
// Values are decimal strings to avoid float rounding on money amounts.
type UpdateRatesRequest struct {
	CBMRateUSD         string `json:"cbmRateUsd" validate:"required"`
	WeightRateUSDPerKg string `json:"weightRateUsdPerKg" validate:"required"`
	USDToGHSRate       string `json:"usdToGhsRate" validate:"required"`
}
