package orderControllers

import (
	"strconv"
	"strings"
)

// Cart payloads arrive from several frontend versions that are sloppy about
// JSON types: product ids as strings, quantities as floats, numeric mobile
// numbers. These helpers coerce the loose values the same way for every
// caller so normalization stays out of the persistence path.

// asString renders a JSON scalar as a trimmed string.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// coerceInt converts a JSON scalar to an int. The bool result is false when
// the value has no usable integer form.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// coerceFloat converts a JSON scalar to a float64.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}
