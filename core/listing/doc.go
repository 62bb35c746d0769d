// Package listing orders and searches in-memory sequences of records by a field.
//
// # Field Accessor
//
// A Field is one of a closed set of keys (sku, name, category, supplier, quantity,
// reorder, price, contact_person). ParseField turns a caller-supplied key into a
// Field and rejects unknown keys up front, so comparison never sees a field it
// cannot resolve. Resolve reads a field from any Record and lower-cases text
// values; numeric values are decimals and are returned as-is.
//
// # Sort
//
// Sort is a stable merge sort. It returns a new slice and never touches the input.
//
// # Search
//
// Search finds every record equal to a target in a slice already sorted on the
// same field: a binary search for one hit, then a scan outwards in both
// directions. Build targets with ParseTarget so they are normalized the same way
// as field values.
//
// # Usage
//
//	field, err := listing.ParseField("category")
//	sorted, err := listing.Sort(products, field)
//	target, err := listing.ParseTarget(field, "Tools")
//	matches, err := listing.Search(sorted, target, field)
//
// All functions are pure and safe to call concurrently on slices that are not
// being mutated.
package listing
