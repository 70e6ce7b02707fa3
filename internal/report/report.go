// Package report turns metadata records into the line-per-record text
// report. Output goes through an io.Writer so commands print to stdout
// and tests capture a buffer.
package report

import (
	"fmt"
	"io"
)

// Write renders one newline-terminated line per record, in order.
// It stops at the first write error.
func Write[T fmt.Stringer](w io.Writer, records []T) error {
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	return nil
}
