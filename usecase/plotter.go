package usecase

import (
	"fmt"
	"log/slog"

	"github.com/ffang0224/project-computer-networks/domain"
)

type TraceRepository interface {
	LoadEvents() ([]domain.TraceEvent, error)
}

type DeliveryRepository interface {
	LoadRecords() ([]domain.DeliveryRecord, error)
}

type CwndRepository interface {
	LoadSamples() ([]domain.CwndSample, error)
}

// ChartRepository persists rendered charts and returns the written path.
type ChartRepository interface {
	SaveThroughput(bandwidth []float64, throughput []domain.ThroughputSample) (string, error)
	SaveCwnd(samples []domain.CwndSample) (string, error)
}

type SeriesRepository interface {
	SaveSeries(series domain.Series) error
}

type Reporter interface {
	Throughput(samples []domain.ThroughputSample)
	Cwnd(samples []domain.CwndSample)
	CwndSaved(path string)
	CwndFailed(err error)
}

type Plotter struct {
	traceRepo    TraceRepository
	deliveryRepo DeliveryRepository
	cwndRepo     CwndRepository
	chartRepo    ChartRepository
	reporter     Reporter
	seriesRepo   SeriesRepository
	log          *slog.Logger
}

func NewPlotter(t TraceRepository, d DeliveryRepository, c CwndRepository, ch ChartRepository, r Reporter, log *slog.Logger) *Plotter {
	if log == nil {
		log = slog.Default()
	}
	return &Plotter{
		traceRepo:    t,
		deliveryRepo: d,
		cwndRepo:     c,
		chartRepo:    ch,
		reporter:     r,
		log:          log,
	}
}

// WithSeriesExport makes Run also persist the derived series.
func (p *Plotter) WithSeriesExport(s SeriesRepository) *Plotter {
	p.seriesRepo = s
	return p
}

// Run executes the three stages and renders the charts. Errors from the
// trace and delivery stages, and from the throughput chart, abort the run
// before anything is written. A CWND failure is reported and swallowed: the
// returned series then carries no CWND samples.
func (p *Plotter) Run() (domain.Series, error) {
	var series domain.Series

	events, err := p.traceRepo.LoadEvents()
	if err != nil {
		return series, fmt.Errorf("load trace: %w", err)
	}
	series.Bandwidth = domain.BucketBandwidth(events)
	p.log.Info("loaded trace", "events", len(events), "windows", len(series.Bandwidth))

	records, err := p.deliveryRepo.LoadRecords()
	if err != nil {
		return series, fmt.Errorf("load delivery log: %w", err)
	}
	series.Throughput, err = domain.BucketThroughput(records)
	if err != nil {
		return series, fmt.Errorf("bucket throughput: %w", err)
	}
	p.log.Info("loaded delivery log", "records", len(records), "windows", len(series.Throughput))

	p.reporter.Throughput(series.Throughput)

	path, err := p.chartRepo.SaveThroughput(series.Bandwidth, series.Throughput)
	if err != nil {
		return series, fmt.Errorf("save throughput chart: %w", err)
	}
	p.log.Info("rendered chart", "path", path)

	if p.seriesRepo != nil {
		if err := p.seriesRepo.SaveSeries(series); err != nil {
			return series, fmt.Errorf("export series: %w", err)
		}
	}

	p.plotCwnd(&series)
	return series, nil
}

func (p *Plotter) plotCwnd(series *domain.Series) {
	samples, err := p.cwndRepo.LoadSamples()
	if err != nil {
		p.log.Warn("skipping cwnd chart", "err", err)
		p.reporter.CwndFailed(err)
		return
	}
	series.Cwnd = samples
	p.reporter.Cwnd(samples)

	if len(samples) == 0 {
		p.log.Warn("skipping cwnd chart", "reason", "no samples")
		return
	}

	path, err := p.chartRepo.SaveCwnd(samples)
	if err != nil {
		p.log.Warn("skipping cwnd chart", "err", err)
		p.reporter.CwndFailed(err)
		return
	}
	p.log.Info("rendered chart", "path", path)
	p.reporter.CwndSaved(path)
}
