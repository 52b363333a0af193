package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/ffang0224/project-computer-networks/domain"
)

const (
	ThroughputChart = "throughput"
	CwndChart       = "cwnd"
)

// ChartRepository writes charts into dir as <name>.pdf, plus a <name>.png
// preview when keepPNG is set.
type ChartRepository struct {
	dir     string
	keepPNG bool
	preview *PreviewRenderer
}

func NewChartRepository(dir string, keepPNG bool) *ChartRepository {
	return &ChartRepository{
		dir:     dir,
		keepPNG: keepPNG,
		preview: NewPreviewRenderer(),
	}
}

func (r *ChartRepository) SaveThroughput(bandwidth []float64, throughput []domain.ThroughputSample) (string, error) {
	p, err := throughputPlot(bandwidth, throughput)
	if err != nil {
		return "", fmt.Errorf("plot %s: %w", ThroughputChart, err)
	}
	path, err := r.savePDF(ThroughputChart, p)
	if err != nil {
		return "", err
	}
	if r.keepPNG {
		img, err := r.preview.RenderThroughput(bandwidth, throughput)
		if err != nil {
			return "", fmt.Errorf("render %s preview: %w", ThroughputChart, err)
		}
		if err := r.savePNG(ThroughputChart, img); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (r *ChartRepository) SaveCwnd(samples []domain.CwndSample) (string, error) {
	p, err := cwndPlot(samples)
	if err != nil {
		return "", fmt.Errorf("plot %s: %w", CwndChart, err)
	}
	path, err := r.savePDF(CwndChart, p)
	if err != nil {
		return "", err
	}
	if r.keepPNG {
		img, err := r.preview.RenderCwnd(samples)
		if err != nil {
			return "", fmt.Errorf("render %s preview: %w", CwndChart, err)
		}
		if err := r.savePNG(CwndChart, img); err != nil {
			return "", err
		}
	}
	return path, nil
}

func (r *ChartRepository) savePDF(name string, p *plot.Plot) (string, error) {
	path := filepath.Join(r.dir, name+".pdf")
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (r *ChartRepository) savePNG(name string, img []byte) error {
	path := filepath.Join(r.dir, name+".png")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
