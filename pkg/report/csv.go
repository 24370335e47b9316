package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// Read parses a comma separated row file: one header line then records.
// Records must have as many fields as the header.
func Read(r io.Reader) (RowSet, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return RowSet{}, ErrEmptyFile
	}
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	records, err := reader.ReadAll()
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to read records: %w", err)
	}

	return RowSet{Header: header, Records: records}, nil
}

// Write writes the header and every record of set to w.
func Write(w io.Writer, set RowSet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(set.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(set.Records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// ReadFile reads one row file.
func ReadFile(path string) (RowSet, error) {
	// #nosec G304 - Reading user-provided report files is intentional
	f, err := os.Open(path)
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	set, err := Read(f)
	if err != nil {
		return RowSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadFiles reads every file and aggregates them in argument order.
func ReadFiles(paths ...string) (RowSet, error) {
	sets := make([]RowSet, 0, len(paths))
	for _, p := range paths {
		set, err := ReadFile(p)
		if err != nil {
			return RowSet{}, err
		}
		sets = append(sets, set)
	}
	return Aggregate(sets...)
}

// WriteFile writes set to path, replacing any existing file.
func WriteFile(path string, set RowSet) error {
	// #nosec G304 - Writing the report to a user-chosen path is intentional
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, set); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
