package adapter

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffang0224/project-computer-networks/domain"
)

func smallPreview() *PreviewRenderer {
	return &PreviewRenderer{Width: 840, Height: 180, DPI: 72}
}

func TestPreviewRenderer_RenderThroughput(t *testing.T) {
	img, err := smallPreview().RenderThroughput(
		[]float64{2 * 1492 * 8, 5 * 1492 * 8, 3 * 1492 * 8},
		[]domain.ThroughputSample{{Elapsed: 0, Mbps: 0.012}, {Elapsed: 1, Mbps: 0.03}},
	)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 840, cfg.Width)
	assert.Equal(t, 180, cfg.Height)
}

func TestPreviewRenderer_DegenerateInputs(t *testing.T) {
	r := smallPreview()

	_, err := r.RenderThroughput(nil, nil)
	assert.NoError(t, err)

	_, err = r.RenderThroughput([]float64{11936}, []domain.ThroughputSample{{Elapsed: 0, Mbps: 1}})
	assert.NoError(t, err)

	_, err = r.RenderCwnd([]domain.CwndSample{{Seconds: 0.1, Cwnd: 10}})
	assert.NoError(t, err)
}

func TestThroughputPlot_Axes(t *testing.T) {
	p, err := throughputPlot(
		[]float64{2 * 1492 * 8, 4 * 1492 * 8},
		[]domain.ThroughputSample{{Elapsed: 0, Mbps: 0.01}, {Elapsed: 3, Mbps: 0.02}},
	)
	require.NoError(t, err)

	assert.Equal(t, "Time (s)", p.X.Label.Text)
	assert.Equal(t, "Throughput (Mbps)", p.Y.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 3.0, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.InDelta(t, 4*1492*8/1e6*1.05, p.Y.Max, 1e-12)
}

func TestCwndPlot_RejectsNaN(t *testing.T) {
	_, err := cwndPlot([]domain.CwndSample{{Seconds: 0, Cwnd: 1}, {Seconds: 1, Cwnd: math.NaN()}})
	assert.Error(t, err)
}

func TestSpan(t *testing.T) {
	r := span(true, 0, []float64{2, 5}, []float64{3})
	assert.Equal(t, axisRange{Min: 0, Max: 5}, r)

	r = span(false, 0, []float64{4, 4})
	assert.Equal(t, axisRange{Min: 4, Max: 5}, r)

	r = span(false, 0)
	assert.Equal(t, axisRange{Min: 0, Max: 1}, r)

	r = span(true, 0.5, []float64{10})
	assert.Equal(t, 15.0, r.Max)
}

func TestChartRepository_Save(t *testing.T) {
	dir := t.TempDir()
	repo := NewChartRepository(dir, true)
	repo.preview = smallPreview()

	path, err := repo.SaveThroughput([]float64{11936}, []domain.ThroughputSample{{Elapsed: 0, Mbps: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "throughput.pdf"), path)
	assert.FileExists(t, filepath.Join(dir, "throughput.png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	path, err = repo.SaveCwnd([]domain.CwndSample{{Seconds: 0, Cwnd: 1}, {Seconds: 1, Cwnd: 2}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cwnd.pdf"), path)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, "cwnd.png"))
}

func TestChartRepository_WithoutPreview(t *testing.T) {
	dir := t.TempDir()

	_, err := NewChartRepository(dir, false).SaveThroughput(nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "throughput.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "throughput.png"))
}

func TestChartRepository_MissingDir(t *testing.T) {
	repo := NewChartRepository(filepath.Join(t.TempDir(), "missing"), false)

	_, err := repo.SaveCwnd([]domain.CwndSample{{Seconds: 0, Cwnd: 1}})
	assert.Error(t, err)
}
