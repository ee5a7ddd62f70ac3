package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"member-reconcile/core/reconcile"
	"member-reconcile/feature/payments/report"
	"member-reconcile/feature/payments/source"
)

// Header is the column order of the cleaned dataset.
var Header = []string{source.ColMemberID, source.ColFullName, source.ColPaidAmount}

// WriteCSV serializes cleaned records with a header row.
func WriteCSV(w io.Writer, cleaned []reconcile.CleanedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, c := range cleaned {
		if err := cw.Write([]string{c.MemberID, c.FullName, report.FormatAmount(c.PaidAmount)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes cleaned records to path, creating parent directories.
func SaveCSV(path string, cleaned []reconcile.CleanedRecord) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := WriteCSV(file, cleaned); err != nil {
		return fmt.Errorf("failed to write cleaned records: %w", err)
	}
	return nil
}
