package listing_test

import (
	"inventory-manager/core/listing"

	"github.com/shopspring/decimal"
)

// item is a minimal product-like record used across the package tests.
type item struct {
	sku      string
	name     string
	category string
	supplier *vendor
	qty      int64
	reorder  int64
	price    decimal.Decimal
}

type vendor struct {
	name    string
	contact string
}

func (i *item) FieldValue(f listing.Field) (listing.Value, error) {
	switch f {
	case listing.FieldIdentifier:
		return listing.Text(i.sku), nil
	case listing.FieldName:
		return listing.Text(i.name), nil
	case listing.FieldCategory:
		return listing.Text(i.category), nil
	case listing.FieldSupplier:
		if i.supplier == nil {
			return listing.Value{}, listing.MissingReference(f, i.sku)
		}
		return listing.Text(i.supplier.name), nil
	case listing.FieldQuantity:
		return listing.Int(i.qty), nil
	case listing.FieldReorderThreshold:
		return listing.Int(i.reorder), nil
	case listing.FieldPrice:
		return listing.Number(i.price), nil
	default:
		return listing.Value{}, listing.NotSupported(f, i.sku)
	}
}

func (v *vendor) FieldValue(f listing.Field) (listing.Value, error) {
	switch f {
	case listing.FieldName:
		return listing.Text(v.name), nil
	case listing.FieldContactPerson:
		return listing.Text(v.contact), nil
	default:
		return listing.Value{}, listing.NotSupported(f, v.name)
	}
}

func withQty(q ...int64) []*item {
	out := make([]*item, len(q))
	for i, v := range q {
		out[i] = &item{sku: string(rune('A' + i)), name: "item", qty: v}
	}
	return out
}

func quantities(items []*item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.qty
	}
	return out
}
