// Package export writes the two-column RUL export: the issue text and
// the derived remaining-useful-life estimate in days. This is the only
// durable tabular format the service produces.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the fixed export header.
var Header = []string{"issue", "rul_days"}

// Record is one exported row.
type Record struct {
	Issue   string
	RULDays int
}

// Write encodes records as comma-separated text with the fixed header.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Issue, strconv.Itoa(r.RULDays)}); err != nil {
			return fmt.Errorf("failed to write export record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendFile appends a record to the export file, writing the header
// first when the file does not exist yet.
func AppendFile(path string, record Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if newFile {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("failed to write export header: %w", err)
		}
	}
	if err := cw.Write([]string{record.Issue, strconv.Itoa(record.RULDays)}); err != nil {
		return fmt.Errorf("failed to write export record: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
