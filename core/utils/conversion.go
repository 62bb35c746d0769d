package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberState tells whether a parsed number can be used as-is.
type NumberState int

const (
	// NumberValid means the value parsed cleanly.
	NumberValid NumberState = iota
	// NumberAbsent means no value was supplied (nil, nil pointer, empty string).
	NumberAbsent
	// NumberMalformed means a value was supplied but could not be read as a number.
	NumberMalformed
)

// String method for NumberState enum
func (s NumberState) String() string {
	switch s {
	case NumberValid:
		return "valid"
	case NumberAbsent:
		return "absent"
	case NumberMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Number is the result of parsing a loosely typed numeric input.
// Value is only meaningful when State is NumberValid.
type Number struct {
	Value  float64
	State  NumberState
	Reason string
}

// Valid wraps a float that is known to be usable.
func Valid(v float64) Number {
	return Number{Value: v, State: NumberValid}
}

// Absent marks a missing value.
func Absent() Number {
	return Number{State: NumberAbsent, Reason: "value not set"}
}

// Malformed marks a value that could not be parsed.
func Malformed(reason string) Number {
	return Number{State: NumberMalformed, Reason: reason}
}

// IsValid reports whether the number parsed cleanly.
func (n Number) IsValid() bool {
	return n.State == NumberValid
}

// Or returns the parsed value, or def when the number is absent or malformed.
func (n Number) Or(def float64) float64 {
	if n.State == NumberValid {
		return n.Value
	}
	return def
}

// OptionalFloat converts a nullable column value into a Number.
func OptionalFloat(p *float64) Number {
	if p == nil {
		return Absent()
	}
	return ParseNumber(*p)
}

// ParseNumber converts various types to a Number using explicit type switching.
// It handles standard integer types, floats, decimals, strings and byte slices.
// NaN and infinities are reported as malformed.
func ParseNumber(val any) Number {
	switch v := val.(type) {
	case nil:
		return Absent()
	case Number:
		return v
	case float64:
		return checkFinite(v)
	case float32:
		return checkFinite(float64(v))
	case *float64:
		return OptionalFloat(v)
	case int:
		return Valid(float64(v))
	case int64:
		return Valid(float64(v))
	case int32:
		return Valid(float64(v))
	case int16:
		return Valid(float64(v))
	case int8:
		return Valid(float64(v))
	case uint:
		return Valid(float64(v))
	case uint64:
		return Valid(float64(v))
	case uint32:
		return Valid(float64(v))
	case uint16:
		return Valid(float64(v))
	case uint8:
		return Valid(float64(v))
	case decimal.Decimal:
		return Valid(v.InexactFloat64())
	case *decimal.Decimal:
		if v == nil {
			return Absent()
		}
		return Valid(v.InexactFloat64())
	case string:
		return parseText(v)
	case []byte:
		return parseText(string(v))
	default:
		return Malformed(fmt.Sprintf("unsupported type %T", v))
	}
}

func parseText(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Malformed(fmt.Sprintf("not a number: %q", s))
	}
	return checkFinite(f)
}

func checkFinite(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Malformed(fmt.Sprintf("not a finite number: %v", f))
	}
	return Valid(f)
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RoundTo rounds f to the given number of decimal places.
func RoundTo(f float64, places int32) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	r, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return r
}
