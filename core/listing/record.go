package listing

import (
	"fmt"

	"inventory-manager/core/utils"

	"github.com/shopspring/decimal"
)

// mapKeys maps each field to the key it is stored under in a MapRecord.
var mapKeys = map[Field]string{
	FieldIdentifier:       "sku",
	FieldName:             "name",
	FieldCategory:         "category",
	FieldSupplier:         "supplier",
	FieldQuantity:         "quantity",
	FieldReorderThreshold: "reorder_level",
	FieldPrice:            "unit_price",
	FieldContactPerson:    "contact_person",
}

// MapRecord adapts a key-value record (decoded JSON, CSV rows) to Record.
//
// The supplier field may hold either the supplier name or a nested map with a
// "name" key. A present but nil supplier is a missing reference.
type MapRecord map[string]any

// FieldValue implements Record.
func (m MapRecord) FieldValue(f Field) (Value, error) {
	key, ok := mapKeys[f]
	if !ok {
		return Value{}, &FieldError{Field: f, Err: ErrUnknownField}
	}
	raw, ok := m[key]
	if !ok {
		return Value{}, NotSupported(f, m.label())
	}

	if f == FieldSupplier {
		switch s := raw.(type) {
		case nil:
			return Value{}, MissingReference(f, m.label())
		case map[string]any:
			name, ok := s["name"]
			if !ok || name == nil {
				return Value{}, MissingReference(f, m.label())
			}
			return Text(utils.ToString(name)), nil
		case MapRecord:
			return s.FieldValue(FieldName)
		}
	}

	kind, _ := f.Kind()
	if kind == KindText {
		return Text(utils.ToString(raw)), nil
	}

	d, err := toDecimal(raw)
	if err != nil {
		return Value{}, &FieldError{Field: f, Record: m.label(), Err: fmt.Errorf("%w: %v", ErrKindMismatch, err)}
	}
	return Number(d), nil
}

func (m MapRecord) label() string {
	if sku, ok := m["sku"]; ok {
		return utils.ToString(sku)
	}
	if name, ok := m["name"]; ok {
		return utils.ToString(name)
	}
	return ""
}

func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	}
	n := utils.ParseNumber(raw)
	if !n.IsValid() {
		return decimal.Zero, fmt.Errorf("%s", n.Reason)
	}
	return decimal.NewFromFloat(n.Value), nil
}
