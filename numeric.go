package jtd

import (
	"math/big"
	"reflect"
)

// numberValue extracts a float64 from a decoded JSON number, however the
// decoder chose to represent it (encoding/json and goccy/go-json both
// produce float64 by default; callers using json.Number still work).
func numberValue(instance any) (float64, bool) {
	switch n := instance.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}

	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}

	if stringer, ok := instance.(interface{ Float64() (float64, error) }); ok {
		f, err := stringer.Float64()
		if err == nil {
			return f, true
		}
	}

	return 0, false
}

// isExactInteger reports whether n is mathematically an integer, using
// big.Float rather than a float64 fractional-part check so that values at
// the edge of float64's precision are classified correctly.
func isExactInteger(n float64) bool {
	_, acc := new(big.Float).SetFloat64(n).Int(nil)
	return acc == big.Exact
}

// inIntegerRange reports whether instance is a JSON number that is
// mathematically an integer within [min, max].
func inIntegerRange(instance any, min, max float64) bool {
	n, ok := numberValue(instance)
	if !ok {
		return false
	}
	if n < min || n > max {
		return false
	}
	return isExactInteger(n)
}
