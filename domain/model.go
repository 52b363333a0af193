package domain

import "errors"

const (
	// TraceWindow is the width of one bandwidth bucket in trace units.
	TraceWindow int64 = 1000
	// PacketSize is the fixed packet size assumed for trace events, in bytes.
	PacketSize = 1492
	// ThroughputWindow is the width of one throughput bucket, in seconds.
	ThroughputWindow = 1.0
)

var ErrMissingData = errors.New("missing data: delivery log needs at least two records")

// TraceEvent is one packet arrival from the capacity trace.
type TraceEvent int64

type DeliveryRecord struct {
	Timestamp float64
	Bytes     int64
}

type ThroughputSample struct {
	Elapsed float64
	Mbps    float64
}

type CwndSample struct {
	Seconds float64
	Cwnd    float64
}

// Series groups the derived sequences handed to the renderer.
type Series struct {
	Bandwidth  []float64
	Throughput []ThroughputSample
	Cwnd       []CwndSample
}

func (s Series) ThroughputXY() (xs, ys []float64) {
	xs = make([]float64, len(s.Throughput))
	ys = make([]float64, len(s.Throughput))
	for i, p := range s.Throughput {
		xs[i] = p.Elapsed
		ys[i] = p.Mbps
	}
	return xs, ys
}

func (s Series) CwndXY() (xs, ys []float64) {
	xs = make([]float64, len(s.Cwnd))
	ys = make([]float64, len(s.Cwnd))
	for i, p := range s.Cwnd {
		xs[i] = p.Seconds
		ys[i] = p.Cwnd
	}
	return xs, ys
}
