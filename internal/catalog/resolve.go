package catalog

import "math"

// Field is one candidate source for a numeric value.
// It returns false when the source field is absent from the raw record.
type Field func() (float64, bool)

// Exact uses a single value field as-is
func Exact(v *float64) Field {
	return func() (float64, bool) {
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

// Midpoint uses the rounded midpoint of a low/high pair.
// When only one bound is present that bound is used.
func Midpoint(low, high *float64) Field {
	return func() (float64, bool) {
		switch {
		case low != nil && high != nil:
			return math.Round((*low + *high) / 2), true
		case low != nil:
			return *low, true
		case high != nil:
			return *high, true
		default:
			return 0, false
		}
	}
}

// Resolve returns the first present field, clamped to be non-negative, or 0
func Resolve(fields ...Field) float64 {
	for _, f := range fields {
		if v, ok := f(); ok {
			return nonNegative(v)
		}
	}
	return 0
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
