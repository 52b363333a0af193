package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffang0224/project-computer-networks/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTextTraceRepository_LoadEvents(t *testing.T) {
	path := writeFile(t, "trace.txt", "500\n 999 \n1500\n2600\n")

	events, err := NewTextTraceRepository(path).LoadEvents()
	require.NoError(t, err)
	assert.Equal(t, []domain.TraceEvent{500, 999, 1500, 2600}, events)
}

func TestTextTraceRepository_BadLineFails(t *testing.T) {
	path := writeFile(t, "trace.txt", "1\n2\nabc\n4\n")

	_, err := NewTextTraceRepository(path).LoadEvents()
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Contains(t, err.Error(), "trace.txt:3:")
}

func TestTextTraceRepository_BlankLineFails(t *testing.T) {
	path := writeFile(t, "trace.txt", "1\n\n3\n")

	_, err := NewTextTraceRepository(path).LoadEvents()
	assert.Error(t, err)
}

func TestTextTraceRepository_MissingFile(t *testing.T) {
	_, err := NewTextTraceRepository(filepath.Join(t.TempDir(), "nope")).LoadEvents()
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCsvDeliveryRepository_LoadRecords(t *testing.T) {
	path := writeFile(t, "delivery.csv", "timestamp,bytes\n0.0,1000\n0.5,500\n1.2,2000\n")

	records, err := NewCsvDeliveryRepository(path).LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, []domain.DeliveryRecord{
		{Timestamp: 0.0, Bytes: 1000},
		{Timestamp: 0.5, Bytes: 500},
		{Timestamp: 1.2, Bytes: 2000},
	}, records)
}

func TestCsvDeliveryRepository_ReceiverFormat(t *testing.T) {
	path := writeFile(t, "throughput_data.txt",
		"epoch time, bytes received, sequence number\n1700000000, 1456, 0\n1700000000, 1456, 1456\n1700000001, 700, 2912\n")

	records, err := NewCsvDeliveryRepository(path).LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.DeliveryRecord{Timestamp: 1700000001, Bytes: 700}, records[2])
}

func TestCsvDeliveryRepository_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		line    int
	}{
		{"single field", "h\n0.0,10\n0.5\n", 3},
		{"bad timestamp", "h\nx,10\n", 2},
		{"float byte count", "h\n0.0,10.5\n", 2},
		{"blank line", "h\n0.0,10\n\n1.0,20\n", 3},
		{"quoted field", "h\n\"0.0,10\"\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "d.csv", tc.content)
			_, err := NewCsvDeliveryRepository(path).LoadRecords()
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.line, le.Line)
		})
	}
}

func TestCsvDeliveryRepository_EmptyFile(t *testing.T) {
	path := writeFile(t, "d.csv", "")

	_, err := NewCsvDeliveryRepository(path).LoadRecords()
	assert.ErrorIs(t, err, domain.ErrMissingData)
}

func TestCsvCwndRepository_LoadSamples(t *testing.T) {
	path := writeFile(t, "CWND.csv", "time_ms,cwnd\n100,10\n250, 12.5\n\n100,200,300\n400,14\n")

	samples, err := NewCsvCwndRepository(path).LoadSamples()
	require.NoError(t, err)
	// The blank and the three-field lines are dropped.
	assert.Equal(t, []domain.CwndSample{
		{Seconds: 0.1, Cwnd: 10},
		{Seconds: 0.25, Cwnd: 12.5},
		{Seconds: 0.4, Cwnd: 14},
	}, samples)
}

func TestCsvCwndRepository_StrayQuoteFails(t *testing.T) {
	path := writeFile(t, "CWND.csv", "time_ms,cwnd\n100,10\n\"200,20\n300,30\n400,40\n")

	_, err := NewCsvCwndRepository(path).LoadSamples()
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Contains(t, err.Error(), "time_ms")
}

func TestCsvCwndRepository_QuotedCommaSplits(t *testing.T) {
	path := writeFile(t, "CWND.csv", "time_ms,cwnd\n100,10\n\"1,2\",3\n400,40\n")

	samples, err := NewCsvCwndRepository(path).LoadSamples()
	require.NoError(t, err)
	// "1,2",3 splits into three fields and is dropped.
	assert.Equal(t, []domain.CwndSample{
		{Seconds: 0.1, Cwnd: 10},
		{Seconds: 0.4, Cwnd: 40},
	}, samples)
}

func TestCsvCwndRepository_BlankFirstLineIsHeader(t *testing.T) {
	path := writeFile(t, "CWND.csv", "\n100,10\n200,20\n")

	samples, err := NewCsvCwndRepository(path).LoadSamples()
	require.NoError(t, err)
	assert.Equal(t, []domain.CwndSample{
		{Seconds: 0.1, Cwnd: 10},
		{Seconds: 0.2, Cwnd: 20},
	}, samples)
}

func TestCsvCwndRepository_HeaderOnly(t *testing.T) {
	path := writeFile(t, "CWND.csv", "time_ms,cwnd\n")

	samples, err := NewCsvCwndRepository(path).LoadSamples()
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestCsvCwndRepository_MalformedNumber(t *testing.T) {
	path := writeFile(t, "CWND.csv", "time_ms,cwnd\n100,10\n200,abc\n")

	_, err := NewCsvCwndRepository(path).LoadSamples()
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Contains(t, err.Error(), "cwnd")
}

func TestCsvCwndRepository_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CWND.csv")

	_, err := NewCsvCwndRepository(path).LoadSamples()
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, path+": no such file or directory", err.Error())
}
