// Package source loads member and payment records from delimited or spreadsheet files.
//
// Sources are header driven: columns are looked up by name, so their order does
// not matter. CSV files are read with encoding/csv and XLSX workbooks with
// excelize (first sheet only).
//
// Any structural problem, such as a missing file, a missing column or a paid amount
// that is not numeric, is returned as a *MalformedSourceError. Nothing is
// partially recovered.
package source
