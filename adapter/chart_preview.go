package adapter

import (
	"bytes"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ffang0224/project-computer-networks/domain"
)

// Charts are 21in x 3in.
const (
	chartWidthIn  = 21
	chartHeightIn = 3
	previewDPI    = 150
)

var (
	previewCapacity = drawing.ColorFromHex("D3D3D3")
	previewGrid     = drawing.ColorFromHex("B0B0B0")
)

// PreviewRenderer draws PNG previews of the throughput and cwnd charts.
type PreviewRenderer struct {
	Width  int
	Height int
	DPI    float64
}

func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{
		Width:  chartWidthIn * previewDPI,
		Height: chartHeightIn * previewDPI,
		DPI:    previewDPI,
	}
}

// RenderThroughput fills the capacity samples (in Mbps, one per window index)
// and draws the measured throughput on top.
func (c *PreviewRenderer) RenderThroughput(bandwidth []float64, throughput []domain.ThroughputSample) ([]byte, error) {
	capX := indexes(len(bandwidth))
	capY := domain.ScaleMbps(bandwidth)
	tpX, tpY := domain.Series{Throughput: throughput}.ThroughputXY()

	var series []chart.Series
	if len(capY) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Capacity",
			XValues: capX,
			YValues: capY,
			Style: chart.Style{
				StrokeColor: previewCapacity,
				StrokeWidth: 1,
				FillColor:   previewCapacity,
			},
		})
	}
	if len(tpY) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Throughput",
			XValues: tpX,
			YValues: tpY,
			Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
		})
	}

	return c.render("Throughput (Mbps)", series, span(true, 0, capX, tpX), span(true, 0.05, capY, tpY))
}

func (c *PreviewRenderer) RenderCwnd(samples []domain.CwndSample) ([]byte, error) {
	xs, ys := domain.Series{Cwnd: samples}.CwndXY()

	var series []chart.Series
	if len(ys) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "CWND",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
		})
	}

	return c.render("Congestion Window Size (packets)", series, span(false, 0, xs), span(true, 0.05, ys))
}

func (c *PreviewRenderer) render(yName string, series []chart.Series, x, y axisRange) ([]byte, error) {
	xr := &chart.ContinuousRange{Min: x.Min, Max: x.Max}
	yr := &chart.ContinuousRange{Min: y.Min, Max: y.Max}

	// go-chart refuses to draw a chart without series
	if len(series) == 0 {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{yr.Min, yr.Min},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
		})
	}

	grid := chart.Style{StrokeColor: previewGrid, StrokeWidth: 0.5}
	ch := chart.Chart{
		Width:  c.Width,
		Height: c.Height,
		DPI:    c.DPI,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: drawing.ColorWhite},
		XAxis:  chart.XAxis{Name: "Time (s)", Range: xr, GridMajorStyle: grid},
		YAxis:  chart.YAxis{Name: yName, Range: yr, GridMajorStyle: grid},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
