package args

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

const nullLiteral = "null"

// valueError describes why a value could not be coerced, and matches [ErrInvalidValue].
type valueError string

func (e valueError) Error() string {
	return ErrInvalidValue.Error() + ": " + string(e)
}

func (e valueError) Unwrap() error {
	return ErrInvalidValue
}

func invalid(format string, args ...any) error {
	return valueError(fmt.Sprintf(format, args...))
}

var (
	trueLiterals  = []string{"true", "1", "yes", "on"}
	falseLiterals = []string{"false", "0", "no", "off", ""}
)

// Coerce converts a value to the value type selected by flags.
// The result is one of string, bool, int, float64, or nil for [Nullable] slots.
// Strings are expected from the command line, but Go values of the matching kind are accepted too, which is how defaults are handled.
func Coerce(value any, flags Flags) (any, error) {
	if value == nil {
		if flags.Has(Nullable) {
			return nil, nil
		}
		return nil, invalid("null is not allowed")
	}
	if s, ok := value.(string); ok && s == nullLiteral && flags.Has(Nullable) {
		return nil, nil
	}
	switch flags.ValueType() {
	case Boolean:
		return coerceBool(value)
	case Integer:
		return coerceInt(value)
	case Float:
		return coerceFloat(value)
	default:
		return coerceString(value)
	}
}

func coerceString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return nil, invalid("%v (%T) is not a string", value, value)
}

func coerceBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		for _, lit := range trueLiterals {
			if v == lit {
				return true, nil
			}
		}
		for _, lit := range falseLiterals {
			if v == lit {
				return false, nil
			}
		}
		return nil, invalid("%q is not a boolean", v)
	}
	if n, ok := numeric(value); ok {
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return nil, invalid("%v is not a boolean", value)
}

func coerceInt(value any) (any, error) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		i, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err == nil {
			return int(i), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, invalid("%q is out of range for an integer", value)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f, value)
		}
		return nil, invalid("%q is not an integer", value)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= math.MinInt && i <= math.MaxInt {
			return int(i), nil
		}
		return nil, invalid("%v is out of range for an integer", value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u), nil
		}
		return nil, invalid("%v is out of range for an integer", value)
	}
	if n, ok := numeric(value); ok {
		return floatToInt(n, value)
	}
	return nil, invalid("%v is not an integer", value)
}

// floatToInt truncates f, failing if it's not finite or doesn't fit in an int.
func floatToInt(f float64, value any) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalid("%v is not an integer", value)
	}
	// float64(math.MinInt) is exact, and its negation is the first value past math.MaxInt.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return nil, invalid("%v is out of range for an integer", value)
	}
	return int(f), nil
}

func coerceFloat(value any) (any, error) {
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, invalid("%q is not a float", value)
		}
		return f, nil
	}
	if n, ok := numeric(value); ok {
		return n, nil
	}
	return nil, invalid("%v is not a float", value)
}

// numeric reports the float64 value of Go numbers and booleans.
func numeric(value any) (float64, bool) {
	if b, ok := value.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// coerceAll boxes value as a slice and coerces every element.
// A scalar becomes a single element slice.
func coerceAll(value any, flags Flags) ([]any, error) {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		v, err := Coerce(value, flags)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	}
	values := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := Coerce(rv.Index(i).Interface(), flags)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
