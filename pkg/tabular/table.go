// Package tabular implements forno's flat table format: a CSV file with a
// fixed, ordered header row followed by one row per record.
//
// Tables are read and written whole. A missing file is an empty table;
// a file that exists but cannot be parsed is a storage failure, never
// silently treated as empty.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/forno/pkg/storage"
)

// ErrStorageUnavailable marks a table file that exists but cannot be read or
// parsed. Callers must not fall back to an empty table on this error.
var ErrStorageUnavailable = errors.New("tabular: table unavailable")

// Record is a single table row keyed by field name.
type Record map[string]string

// Load reads every record of the table at path on disk d.
//
// A missing file yields an empty table and no error. Header cells and values
// are trimmed of surrounding whitespace, so hand-edited files stay readable.
// Header columns not listed in fields are ignored; rows shorter than the
// header read the missing fields as "". Rows come back in file order.
func Load(d storage.Disk, path string, fields []string) ([]Record, error) {
	if d.Missing(path) {
		return nil, nil
	}

	data, err := d.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // tolerate short and long rows
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var records []Record
	for _, row := range rows[1:] {
		rec := make(Record, len(fields))
		for _, f := range fields {
			rec[f] = ""
		}
		for i, h := range header {
			if !known[h] || i >= len(row) {
				continue
			}
			rec[h] = strings.TrimSpace(row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save fully overwrites the table at path: a header row naming fields in
// order, then one row per record in the given order. An empty record set
// still produces the header, so the schema survives a table going empty.
func Save(d storage.Disk, path string, fields []string, records []Record) error {
	data, err := encode(fields, records, true)
	if err != nil {
		return err
	}
	if err := d.Put(path, data); err != nil {
		return fmt.Errorf("tabular: save %s: %w", path, err)
	}
	return nil
}

// Append adds one record to the table at path without rewriting it.
// The header is written first only when the file is absent or empty.
func Append(d storage.Disk, path string, fields []string, rec Record) error {
	withHeader := d.Missing(path)
	if !withHeader {
		size, err := d.Size(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
		}
		withHeader = size == 0
	}

	data, err := encode(fields, []Record{rec}, withHeader)
	if err != nil {
		return err
	}
	if err := d.Append(path, data); err != nil {
		return fmt.Errorf("tabular: append %s: %w", path, err)
	}
	return nil
}

func encode(fields []string, records []Record, withHeader bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if withHeader {
		if err := w.Write(fields); err != nil {
			return nil, fmt.Errorf("tabular: write header: %w", err)
		}
	}
	for _, rec := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = rec[f]
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("tabular: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("tabular: encode: %w", err)
	}
	return buf.Bytes(), nil
}
