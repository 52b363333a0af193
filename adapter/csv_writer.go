package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ffang0224/project-computer-networks/domain"
)

const (
	BandwidthSeriesFile  = "bandwidth.csv"
	ThroughputSeriesFile = "throughput.csv"
)

// CsvSeriesRepository exports the derived capacity and throughput series
// next to the charts.
type CsvSeriesRepository struct {
	dir string
}

func NewCsvSeriesRepository(dir string) *CsvSeriesRepository {
	return &CsvSeriesRepository{dir: dir}
}

func (r *CsvSeriesRepository) SaveSeries(series domain.Series) error {
	bw := make([][]string, len(series.Bandwidth))
	for i, bits := range series.Bandwidth {
		bw[i] = []string{strconv.Itoa(i), formatCsvFloat(bits / 1e6)}
	}
	if err := writeCsv(filepath.Join(r.dir, BandwidthSeriesFile), []string{"window", "capacity_mbps"}, bw); err != nil {
		return err
	}

	tp := make([][]string, len(series.Throughput))
	for i, s := range series.Throughput {
		tp[i] = []string{formatCsvFloat(s.Elapsed), formatCsvFloat(s.Mbps)}
	}
	return writeCsv(filepath.Join(r.dir, ThroughputSeriesFile), []string{"elapsed_s", "throughput_mbps"}, tp)
}

func formatCsvFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCsv(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
