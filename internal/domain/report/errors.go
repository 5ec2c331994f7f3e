package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedReport is the single failure kind of report parsing.
// A malformed report is rejected as a whole; none of its findings are trusted.
var ErrMalformedReport = errors.New("malformed report")

// MalformedReportError carries the context of a rejected report.
// Index is the zero-based position of the element among its siblings, or -1.
// Within names the enclosing element for nested failures.
type MalformedReportError struct {
	Element   string
	Index     int
	Within    string
	Attribute string
	Value     string
	Reason    string
	Err       error
}

// Error implements error.
func (e *MalformedReportError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedReport.Error())
	if e.Element != "" {
		b.WriteString(": <")
		b.WriteString(e.Element)
		b.WriteString(">")
		if e.Index >= 0 {
			fmt.Fprintf(&b, " #%d", e.Index)
		}
	}
	if e.Within != "" {
		b.WriteString(" in ")
		b.WriteString(e.Within)
	}
	if e.Attribute != "" {
		fmt.Fprintf(&b, " attribute %q", e.Attribute)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is ErrMalformedReport.
func (e *MalformedReportError) Is(target error) bool {
	return target == ErrMalformedReport
}

// Unwrap returns the underlying decoding error, if any.
func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a malformed report error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedReport)
}
