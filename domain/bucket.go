package domain

// BucketBandwidth turns trace events into bits delivered per TraceWindow.
//
// A window closes when an event lands past the running threshold. The closing
// event itself is not counted, the threshold moves forward by a single window
// however large the gap was, and the last open window is dropped.
func BucketBandwidth(events []TraceEvent) []float64 {
	var out []float64
	next := TraceWindow
	var cnt int64
	for _, ev := range events {
		if int64(ev) > next {
			out = append(out, float64(cnt*PacketSize*8))
			cnt = 0
			next += TraceWindow
		} else {
			cnt++
		}
	}
	return out
}

// BucketThroughput sums delivered bytes per ThroughputWindow and converts each
// closed window to Mbps. Like BucketBandwidth it advances one window per
// emission and never flushes the trailing window.
func BucketThroughput(records []DeliveryRecord) ([]ThroughputSample, error) {
	if len(records) < 2 {
		return nil, ErrMissingData
	}
	first := records[0]
	start := first.Timestamp
	acc := first.Bytes

	var out []ThroughputSample
	for _, rec := range records[1:] {
		if rec.Timestamp-start <= ThroughputWindow {
			acc += rec.Bytes
			continue
		}
		out = append(out, ThroughputSample{
			Elapsed: start - first.Timestamp,
			Mbps:    float64(acc) * 8 / 1e6,
		})
		acc = rec.Bytes
		start += ThroughputWindow
	}
	return out, nil
}

// ScaleMbps converts bit counts to megabits.
func ScaleMbps(bits []float64) []float64 {
	out := make([]float64, len(bits))
	for i, b := range bits {
		out[i] = b / 1e6
	}
	return out
}
