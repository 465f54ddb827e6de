package jsonval

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Type names used in mismatch reports.
const (
	TypeNull   = "null"
	TypeString = "string"
	TypeNumber = "number"
	TypeBool   = "bool"
	TypeRecord = "record"
	TypeList   = "list"
)

// TypeName returns the JSON type name of v, or its Go type for values outside
// the data model.
func TypeName(v any) string {
	switch v := v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBool
	case *Record:
		if v == nil {
			return TypeNull
		}
		return TypeRecord
	case *List:
		if v == nil {
			return TypeNull
		}
		return TypeList
	default:
		if _, ok := ToDecimal(v); ok {
			return TypeNumber
		}
		return fmt.Sprintf("%T", v)
	}
}

// IsInteger reports whether v is held as an integer.
func IsInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// IsFloat reports whether v is held as a floating value.
func IsFloat(v any) bool {
	switch v.(type) {
	case float32, float64, decimal.Decimal:
		return true
	}
	return false
}

// ToDecimal converts any numeric representation to an exact decimal.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint8:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint16:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint32:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case decimal.Decimal:
		return n, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	}
	return decimal.Zero, false
}

// FormatNumber renders integral values without a fractional part and other
// values with the shortest decimal that round-trips.
func FormatNumber(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
	}
	d, ok := ToDecimal(v)
	if !ok {
		return fmt.Sprint(v)
	}
	return d.String()
}

// Stringify renders a value as template text. Null becomes the empty string,
// records and lists become compact JSON.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case *Record, *List:
		if TypeName(v) == TypeNull {
			return ""
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	case fmt.Stringer:
		return s.String()
	}
	if _, ok := ToDecimal(v); ok {
		return FormatNumber(v)
	}
	return fmt.Sprint(v)
}
