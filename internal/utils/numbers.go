package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AsNumber reports whether v holds a finite number. Payloads are decoded
// into interface values, so every JSON number arrives as float64; strings are
// never numbers here, even when they look numeric.
func AsNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || !IsFinite(f) {
		return 0, false
	}
	return f, true
}

// IsFinite reports whether f can be encoded as a JSON number.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// StoredNumber coerces a value scanned from the database into a number.
// SQL NULL maps to nil. Numeric text is parsed; any other text is an error.
func StoredNumber(v any) (*float64, error) {
	var f float64
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if !IsFinite(n) {
			return nil, fmt.Errorf("stored value %v is not finite", n)
		}
		f = n
	case int64:
		f = float64(n)
	case []byte:
		parsed, err := parseNumericText(string(n))
		if err != nil {
			return nil, err
		}
		f = parsed
	case string:
		parsed, err := parseNumericText(n)
		if err != nil {
			return nil, err
		}
		f = parsed
	default:
		return nil, fmt.Errorf("unsupported stored type %T", v)
	}
	return &f, nil
}

func parseNumericText(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !IsFinite(f) {
		return 0, fmt.Errorf("stored value %q is not numeric", s)
	}
	return f, nil
}
