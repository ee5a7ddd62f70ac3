package source

import "fmt"

// MalformedSourceError reports source data that cannot be turned into records.
// Row is the 1-based line of the offending record including the header; it is 0
// for file-level failures.
type MalformedSourceError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *MalformedSourceError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("malformed source %s: row %d, column %s: %v", e.Source, e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("malformed source %s: column %s: %v", e.Source, e.Column, e.Err)
	default:
		return fmt.Sprintf("malformed source %s: %v", e.Source, e.Err)
	}
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}
