package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Report is a tabular report ready for rendering, one row per class in
// a student's attendance breakdown.
type Report struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// CSV renders the report into CSV bytes.
func CSV(report Report) ([]byte, error) {
	if len(report.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(report.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range report.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
