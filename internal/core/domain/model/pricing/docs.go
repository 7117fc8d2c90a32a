// Package pricing implements the freight cost engine: cubic volume (CBM)
// computation from parcel dimensions and shipment cost computation from the
// chosen shipping method.
//
// The package contains only pure, stateless value objects and functions.
// Freight and exchange rates are admin-editable settings that change between
// calls, so they are always passed in as an explicit Rates parameter and are
// never cached or hard-coded here.
//
// Pricing rules:
//   - Sea freight is priced by volume: usd = cbm × CBMRateUSD
//   - Air freight is priced by weight: usd = kg × WeightRateUSDPerKg
//   - cedis = usd × USDToGHSRate
//   - A missing or zero input for the method in use prices at zero; an item
//     that has not been measured yet is "not yet priceable", not an error.
//
// Monetary amounts use shopspring/decimal and keep full precision; rounding
// to currency precision happens only at presentation.
package pricing
