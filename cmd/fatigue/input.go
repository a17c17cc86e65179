package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// readSamples reads one numeric column from a CSV file (or stdin when path is
// empty). A non-numeric first record is treated as a header and skipped;
// blank records are ignored; any later parse failure is an error carrying the
// record number.
func readSamples(path string, column int) ([]float64, error) {
	var src io.Reader = os.Stdin
	name := "stdin"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src, name = f, path
	}
	if column < 0 {
		return nil, fmt.Errorf("column must be non-negative, got %d", column)
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1 // ragged rows are fine as long as the column exists
	r.TrimLeadingSpace = true

	var samples []float64
	record, line := []string(nil), 0
	for {
		var err error
		record, err = r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		line++

		if len(record) == 1 && record[0] == "" {
			continue // blank line
		}
		if column >= len(record) {
			return nil, fmt.Errorf("%s record %d: column %d missing (only %d fields)", name, line, column, len(record))
		}

		v, err := strconv.ParseFloat(record[column], 64)
		if err != nil {
			if line == 1 {
				slog.Debug("skipping header record", "file", name, "field", record[column])

				continue
			}

			return nil, fmt.Errorf("%s record %d: %w", name, line, err)
		}
		samples = append(samples, v)
	}

	slog.Debug("samples loaded", "file", name, "column", column, "count", len(samples))

	return samples, nil
}
