package adapter

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ffang0224/project-computer-networks/domain"
)

const (
	plotWidth  = chartWidthIn * vg.Inch
	plotHeight = chartHeightIn * vg.Inch
)

var (
	capacityFill   = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}
	throughputLine = color.RGBA{R: 0xFF, A: 0xFF}
	cwndLine       = color.RGBA{B: 0xFF, A: 0xFF}
)

// throughputPlot fills the capacity samples (Mbps per window index) and
// draws the measured throughput over them.
func throughputPlot(bandwidth []float64, throughput []domain.ThroughputSample) (*plot.Plot, error) {
	capX := indexes(len(bandwidth))
	capY := domain.ScaleMbps(bandwidth)
	tpX, tpY := domain.Series{Throughput: throughput}.ThroughputXY()

	p := newPlot("Throughput (Mbps)")
	if len(capY) > 0 {
		fill, err := plotter.NewLine(xys(capX, capY))
		if err != nil {
			return nil, err
		}
		fill.Color = capacityFill
		fill.FillColor = capacityFill
		p.Add(fill)
	}
	p.Add(plotter.NewGrid())
	if len(tpY) > 0 {
		line, err := plotter.NewLine(xys(tpX, tpY))
		if err != nil {
			return nil, err
		}
		line.Color = throughputLine
		line.Width = vg.Points(2)
		p.Add(line)
	}

	setRange(p, span(true, 0, capX, tpX), span(true, 0.05, capY, tpY))
	return p, nil
}

func cwndPlot(samples []domain.CwndSample) (*plot.Plot, error) {
	xs, ys := domain.Series{Cwnd: samples}.CwndXY()

	p := newPlot("Congestion Window Size (packets)")
	p.Add(plotter.NewGrid())
	if len(ys) > 0 {
		line, err := plotter.NewLine(xys(xs, ys))
		if err != nil {
			return nil, err
		}
		line.Color = cwndLine
		line.Width = vg.Points(2)
		p.Add(line)
	}

	setRange(p, span(false, 0, xs), span(true, 0.05, ys))
	return p, nil
}

func newPlot(yLabel string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = yLabel
	return p
}

// setRange must run after every plotter is added, Add widens the axes.
func setRange(p *plot.Plot, x, y axisRange) {
	p.X.Min, p.X.Max = x.Min, x.Max
	p.Y.Min, p.Y.Max = y.Min, y.Max
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
