package adapter

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/ffang0224/project-computer-networks/domain"
)

// TextTraceRepository reads a capacity trace holding one integer timestamp
// per line, without header.
type TextTraceRepository struct {
	filename string
}

func NewTextTraceRepository(filename string) *TextTraceRepository {
	return &TextTraceRepository{filename: filename}
}

func (r *TextTraceRepository) LoadEvents() ([]domain.TraceEvent, error) {
	file, err := openInput(r.filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []domain.TraceEvent
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		v, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
		if err != nil {
			return nil, &LoadError{Path: r.filename, Line: line, Err: err}
		}
		events = append(events, domain.TraceEvent(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: r.filename, Err: err}
	}
	return events, nil
}
