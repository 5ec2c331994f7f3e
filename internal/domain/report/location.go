package report

import (
	"encoding/json"
	"fmt"
)

// Location is one source position referenced by a finding.
// The file path is kept exactly as the analyzer reported it.
// A zero line or column means the analyzer did not know it.
type Location struct {
	file   string
	line   uint32
	column uint32
}

// NewLocation creates a Location.
func NewLocation(file string, line, column uint32) Location {
	return Location{
		file:   file,
		line:   line,
		column: column,
	}
}

// File returns the file path as reported.
func (l Location) File() string { return l.file }

// Line returns the line number, 0 if unknown.
func (l Location) Line() uint32 { return l.line }

// Column returns the column number, 0 if unknown.
func (l Location) Column() uint32 { return l.column }

// String returns a file:line:column representation, omitting unknown parts.
func (l Location) String() string {
	if l.line == 0 {
		return l.file
	}
	if l.column == 0 {
		return fmt.Sprintf("%s:%d", l.file, l.line)
	}
	return fmt.Sprintf("%s:%d:%d", l.file, l.line, l.column)
}

type locationJSON struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// MarshalJSON implements json.Marshaler.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{
		File:   l.file,
		Line:   l.line,
		Column: l.column,
	})
}
