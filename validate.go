package canvaslab

import "math"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// reject records a refused assignment. The previous value is kept by the
// caller; nothing is returned to the user.
func reject(field string, value any) {
	Logger().Debug("canvaslab: value rejected", "field", field, "value", value)
}

// assign stores v in dst when ok holds and logs the rejection otherwise.
func assign(dst *float64, v float64, ok bool, field string) bool {
	if !ok {
		reject(field, v)
		return false
	}
	*dst = v
	return true
}

func setFinite(dst *float64, v float64, field string) bool {
	return assign(dst, v, finite(v), field)
}

func setNonNegative(dst *float64, v float64, field string) bool {
	return assign(dst, v, finite(v) && v >= 0, field)
}

func setPositive(dst *float64, v float64, field string) bool {
	return assign(dst, v, finite(v) && v > 0, field)
}

func setRange(dst *float64, v, lo, hi float64, field string) bool {
	return assign(dst, v, finite(v) && v >= lo && v <= hi, field)
}
