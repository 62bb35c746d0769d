package listing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind distinguishes text values from numeric values.
type Kind int

const (
	KindText Kind = iota + 1
	KindNumber
)

// Value is a comparable field value.
type Value struct {
	kind Kind
	text string
	num  decimal.Decimal
}

// Text builds a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number builds a numeric value.
func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// Int builds a numeric value from an integer.
func Int(i int64) Value {
	return Number(decimal.NewFromInt(i))
}

// Kind returns the kind of the value. The zero Value has kind 0.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	if v.kind == KindNumber {
		return v.num.String()
	}
	return v.text
}

// Compare orders two values. Values of different kinds order by kind, text
// first, so the order is total even when kinds are mixed.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.kind == KindNumber {
		return a.num.Cmp(b.num)
	}
	return strings.Compare(a.text, b.text)
}

// Equal reports whether two values compare equal.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// ParseTarget normalizes caller-supplied search text the same way Resolve
// normalizes field values: text is trimmed and lower-cased, numbers are parsed
// as decimals.
func ParseTarget(f Field, raw string) (Value, error) {
	kind, ok := f.Kind()
	if !ok {
		return Value{}, &FieldError{Field: f, Err: ErrUnknownField}
	}
	raw = strings.TrimSpace(raw)
	if kind == KindText {
		return Text(strings.ToLower(raw)), nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Value{}, &FieldError{Field: f, Key: raw, Err: ErrInvalidTarget}
	}
	return Number(d), nil
}
