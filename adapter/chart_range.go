package adapter

import "math"

type axisRange struct {
	Min, Max float64
}

func indexes(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// span returns a range covering every finite value, optionally anchored at
// zero, with headroom added above the maximum. Empty or flat data still
// yields a non-empty range.
func span(withZero bool, headroom float64, values ...[]float64) axisRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	}
	if withZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi-lo == 0 {
		hi = lo + 1
	}
	hi += (hi - lo) * headroom
	return axisRange{Min: lo, Max: hi}
}
