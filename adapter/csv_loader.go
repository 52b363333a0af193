package adapter

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/ffang0224/project-computer-networks/domain"
)

// scanLog reads a comma separated experiment log one line at a time. The first
// line is the header and is consumed unchecked. Every later line is trimmed,
// split on commas and handed to fn. An error from fn stops the scan and is
// reported against that line. Quotes carry no meaning.
func scanLog(path string, fn func(fields []string) error) (header bool, err error) {
	file, err := openInput(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			header = true
			continue
		}
		if err := fn(strings.Split(strings.TrimSpace(scanner.Text()), ",")); err != nil {
			return header, &LoadError{Path: path, Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return header, &LoadError{Path: path, Err: err}
	}
	return header, nil
}

// CsvDeliveryRepository reads the receiver's delivery log
// (timestamp,bytes[,...]) after one header line. Columns past the second,
// such as the receiver's sequence number, are ignored. Every data line must
// parse, blank ones included.
type CsvDeliveryRepository struct {
	filename string
}

func NewCsvDeliveryRepository(filename string) *CsvDeliveryRepository {
	return &CsvDeliveryRepository{filename: filename}
}

func (r *CsvDeliveryRepository) LoadRecords() ([]domain.DeliveryRecord, error) {
	var records []domain.DeliveryRecord
	header, err := scanLog(r.filename, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("want timestamp and byte count, got %d field(s)", len(fields))
		}
		ts, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return fmt.Errorf("byte count: %w", err)
		}
		records = append(records, domain.DeliveryRecord{Timestamp: ts, Bytes: n})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !header {
		return nil, &LoadError{Path: r.filename, Err: domain.ErrMissingData}
	}
	return records, nil
}
