package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ffang0224/project-computer-networks/domain"
)

// CsvCwndRepository reads a time_ms,cwnd log after one header line. Lines
// that do not split into exactly two fields are skipped; a two-field line
// that does not parse fails the whole load.
type CsvCwndRepository struct {
	filename string
}

func NewCsvCwndRepository(filename string) *CsvCwndRepository {
	return &CsvCwndRepository{filename: filename}
}

func (r *CsvCwndRepository) LoadSamples() ([]domain.CwndSample, error) {
	var samples []domain.CwndSample
	_, err := scanLog(r.filename, func(fields []string) error {
		if len(fields) != 2 {
			return nil
		}
		ms, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return fmt.Errorf("time_ms: %w", err)
		}
		cwnd, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return fmt.Errorf("cwnd: %w", err)
		}
		samples = append(samples, domain.CwndSample{Seconds: ms / 1000, Cwnd: cwnd})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}
