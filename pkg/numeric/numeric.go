package numeric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber coerces stored or user supplied values into a finite float64.
// Strings may carry thousands separators ("12,000"). Anything that does not
// parse to a finite number yields fallback.
func ToNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		return finiteOr(n, fallback)
	case float32:
		return finiteOr(float64(n), fallback)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case Number:
		return finiteOr(float64(n), fallback)
	case json.Number:
		return parse(string(n), fallback)
	case string:
		return parse(n, fallback)
	case []byte:
		return parse(string(n), fallback)
	default:
		return parse(fmt.Sprint(v), fallback)
	}
}

func parse(s string, fallback float64) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return finiteOr(f, fallback)
}

func finiteOr(f, fallback float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

func Clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

// Number is a float64 that decodes leniently from JSON: numbers, numeric
// strings with separators, null and garbage all decode (the latter two to 0).
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Number(ToNumber(s, 0))
		return nil
	}
	*n = Number(parse(string(b), 0))
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}
