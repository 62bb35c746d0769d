package listing

import (
	"errors"
	"strings"
)

// Field identifies which record attribute to sort, search or compare by.
type Field int

const (
	FieldIdentifier Field = iota + 1
	FieldName
	FieldCategory
	FieldSupplier
	FieldQuantity
	FieldReorderThreshold
	FieldPrice
	FieldContactPerson
)

// Fields lists every known field in declaration order.
var Fields = []Field{
	FieldIdentifier,
	FieldName,
	FieldCategory,
	FieldSupplier,
	FieldQuantity,
	FieldReorderThreshold,
	FieldPrice,
	FieldContactPerson,
}

// fieldAliases maps the symbolic keys accepted from callers to fields.
var fieldAliases = map[string]Field{
	"sku":            FieldIdentifier,
	"identifier":     FieldIdentifier,
	"name":           FieldName,
	"category":       FieldCategory,
	"supplier":       FieldSupplier,
	"supplier_name":  FieldSupplier,
	"quantity":       FieldQuantity,
	"reorder":        FieldReorderThreshold,
	"reorder_level":  FieldReorderThreshold,
	"price":          FieldPrice,
	"unit_price":     FieldPrice,
	"contact_person": FieldContactPerson,
}

// ParseField maps a symbolic key to a Field. Keys are matched case-insensitively.
// Unknown keys return ErrUnknownField.
func ParseField(key string) (Field, error) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return 0, &FieldError{Key: key, Err: ErrUnknownField}
	}
	return f, nil
}

// String returns the canonical key of the field.
func (f Field) String() string {
	switch f {
	case FieldIdentifier:
		return "sku"
	case FieldName:
		return "name"
	case FieldCategory:
		return "category"
	case FieldSupplier:
		return "supplier"
	case FieldQuantity:
		return "quantity"
	case FieldReorderThreshold:
		return "reorder"
	case FieldPrice:
		return "price"
	case FieldContactPerson:
		return "contact_person"
	default:
		return "unknown"
	}
}

// Kind returns the kind of value the field resolves to.
func (f Field) Kind() (Kind, bool) {
	switch f {
	case FieldIdentifier, FieldName, FieldCategory, FieldSupplier, FieldContactPerson:
		return KindText, true
	case FieldQuantity, FieldReorderThreshold, FieldPrice:
		return KindNumber, true
	default:
		return 0, false
	}
}

// Record is any entity that can report the raw value of a field.
//
// Implementations return a Text value for text fields and a Number value for
// numeric fields. They return ErrFieldNotSupported for fields they do not carry
// and ErrMissingReference when the field lives on a related entity that is not set.
type Record interface {
	FieldValue(f Field) (Value, error)
}

// Resolve returns the comparable value of a record's field.
// Text values are lower-cased so that sorting and searching are case-insensitive.
func Resolve(r Record, f Field) (Value, error) {
	kind, ok := f.Kind()
	if !ok {
		return Value{}, &FieldError{Field: f, Err: ErrUnknownField}
	}

	v, err := r.FieldValue(f)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			return Value{}, err
		}
		return Value{}, &FieldError{Field: f, Err: err}
	}

	if v.kind != kind {
		return Value{}, &FieldError{Field: f, Err: ErrKindMismatch}
	}

	if kind == KindText {
		return Text(strings.ToLower(v.text)), nil
	}
	return v, nil
}
