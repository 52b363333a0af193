package adapter

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ffang0224/project-computer-networks/domain"
)

// ConsoleReporter prints the derived series and the cwnd outcome.
type ConsoleReporter struct {
	w io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Throughput(samples []domain.ThroughputSample) {
	xs, ys := domain.Series{Throughput: samples}.ThroughputXY()
	fmt.Fprintln(r.w, "Throughput Data:")
	fmt.Fprintln(r.w, formatList(xs))
	fmt.Fprintln(r.w, formatList(ys))
	if len(ys) > 0 {
		s := Summarize(ys)
		fmt.Fprintf(r.w, "Throughput summary: n=%d mean=%s Mbps stddev=%s Mbps p95=%s Mbps max=%s Mbps\n",
			s.N, formatFloat(s.Mean), formatFloat(s.StdDev), formatFloat(s.P95), formatFloat(s.Max))
	}
}

func (r *ConsoleReporter) Cwnd(samples []domain.CwndSample) {
	xs, ys := domain.Series{Cwnd: samples}.CwndXY()
	fmt.Fprintln(r.w, "\nCWND Data:")
	fmt.Fprintln(r.w, formatList(xs))
	fmt.Fprintln(r.w, formatList(ys))
}

func (r *ConsoleReporter) CwndSaved(path string) {
	fmt.Fprintf(r.w, "CWND plot saved to %s\n", path)
}

func (r *ConsoleReporter) CwndFailed(err error) {
	fmt.Fprintf(r.w, "Error plotting CWND data: %v\n", err)
}

type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	P95    float64
	Max    float64
}

// Summarize computes descriptive statistics of a non-empty sample.
// StdDev is the sample standard deviation and zero for a single value.
func Summarize(values []float64) Summary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{
		N:    len(values),
		Mean: stat.Mean(values, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Max:  floats.Max(values),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatFloat prints the shortest round-trip form, keeping a ".0" on whole
// numbers and switching to exponent form for very small or large magnitudes.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
