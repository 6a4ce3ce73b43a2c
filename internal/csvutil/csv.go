// Package csvutil streams embedded CSV tables into typed records.
package csvutil

import (
	"encoding/csv"
	"io"

	"github.com/cockroachdb/errors"
)

// CSVRecord carries one converted row or the error that stopped parsing.
type CSVRecord[T any] struct {
	Value T
	Error error
}

// ParseCSV streams rows from r through convert. When hasHeader is set, the
// first row is captured and passed to convert alongside each record.
func ParseCSV[T any](r io.Reader, hasHeader bool, convert func(record, headers []string) (T, error)) <-chan CSVRecord[T] {
	out := make(chan CSVRecord[T])

	go func() {
		defer close(out)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1

		var headers []string
		if hasHeader {
			row, err := reader.Read()
			if err != nil {
				out <- CSVRecord[T]{Error: errors.Wrap(err, "failed to read CSV header")}
				return
			}
			headers = row
		}

		for {
			row, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				out <- CSVRecord[T]{Error: errors.Wrap(err, "failed to read CSV record")}
				return
			}
			value, err := convert(row, headers)
			if err != nil {
				out <- CSVRecord[T]{Error: err}
				return
			}
			out <- CSVRecord[T]{Value: value}
		}
	}()

	return out
}
