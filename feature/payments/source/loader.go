package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"member-reconcile/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file extensions other than .csv and .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported source format")

// LoadMembers reads the member source at path.
func LoadMembers(path string) ([]reconcile.MemberRecord, error) {
	t, err := loadTable(path, MemberColumns)
	if err != nil {
		return nil, err
	}
	return t.members(), nil
}

// LoadPayments reads the payment source at path.
func LoadPayments(path string) ([]reconcile.PaymentRecord, error) {
	t, err := loadTable(path, PaymentColumns)
	if err != nil {
		return nil, err
	}
	return t.payments()
}

// ReadMembers parses a CSV member stream. name labels errors.
func ReadMembers(name string, r io.Reader) ([]reconcile.MemberRecord, error) {
	raw, err := readCSV(name, r)
	if err != nil {
		return nil, err
	}
	t, err := newTable(name, raw, MemberColumns)
	if err != nil {
		return nil, err
	}
	return t.members(), nil
}

// ReadPayments parses a CSV payment stream. name labels errors.
func ReadPayments(name string, r io.Reader) ([]reconcile.PaymentRecord, error) {
	raw, err := readCSV(name, r)
	if err != nil {
		return nil, err
	}
	t, err := newTable(name, raw, PaymentColumns)
	if err != nil {
		return nil, err
	}
	return t.payments()
}

// loadTable dispatches on the file extension.
func loadTable(path string, required []string) (*table, error) {
	var (
		raw [][]string
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		raw, err = readCSVFile(path)
	case ".xlsx":
		raw, err = readXLSXFile(path)
	default:
		return nil, &MalformedSourceError{Source: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}
	if err != nil {
		return nil, err
	}

	return newTable(path, raw, required)
}

func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &MalformedSourceError{Source: path, Err: err}
	}
	defer file.Close()

	return readCSV(path, file)
}

func readCSV(name string, r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Allow short rows; missing trailing cells read as empty
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedSourceError{Source: name, Err: fmt.Errorf("failed to read CSV: %w", err)}
	}
	return rows, nil
}

// readXLSXFile returns the rows of the first sheet in the workbook.
func readXLSXFile(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &MalformedSourceError{Source: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MalformedSourceError{Source: path, Err: ErrEmptySource}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &MalformedSourceError{Source: path, Err: fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)}
	}
	return rows, nil
}
