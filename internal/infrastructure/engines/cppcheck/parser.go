package cppcheck

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/felixgeelhaar/cxxcodes/internal/domain/report"
)

// CppcheckResults is the root of a cppcheck XML report (--xml --xml-version=2).
type CppcheckResults struct {
	XMLName xml.Name        `xml:"results"`
	Version string          `xml:"version,attr"`
	Tool    *CppcheckTool   `xml:"cppcheck"`
	Errors  *CppcheckErrors `xml:"errors"`
}

// CppcheckTool describes the analyzer that produced the report.
type CppcheckTool struct {
	Version string `xml:"version,attr"`
}

// CppcheckErrors is the container of findings.
type CppcheckErrors struct {
	Errors []CppcheckError `xml:"error"`
}

// CppcheckError is a single finding. Attributes are pointers so that an
// absent attribute can be told apart from an empty one.
type CppcheckError struct {
	ID        *string            `xml:"id,attr"`
	Severity  *string            `xml:"severity,attr"`
	Msg       *string            `xml:"msg,attr"`
	Verbose   *string            `xml:"verbose,attr"`
	File0     *string            `xml:"file0,attr"`
	CWE       *string            `xml:"cwe,attr"`
	Locations []CppcheckLocation `xml:"location"`
	Symbol    *string            `xml:"symbol"`
}

// CppcheckLocation is one source position of a finding.
type CppcheckLocation struct {
	File   *string `xml:"file,attr"`
	Line   *string `xml:"line,attr"`
	Column *string `xml:"column,attr"`
}

// Parser converts cppcheck XML output to a report.
type Parser struct{}

// NewParser creates a new cppcheck parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a complete cppcheck XML document to a report.
// Any structural problem rejects the whole document with report.ErrMalformedReport.
func (p *Parser) Parse(data []byte) (*report.Report, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &report.MalformedReportError{Index: -1, Reason: "empty document"}
	}
	return p.ParseReader(bytes.NewReader(data))
}

// ParseReader reads one complete cppcheck XML document from r.
func (p *Parser) ParseReader(r io.Reader) (*report.Report, error) {
	var results CppcheckResults
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&results); err != nil {
		reason := "unparseable markup"
		if errors.Is(err, io.EOF) {
			reason = "empty document"
		}
		return nil, &report.MalformedReportError{Index: -1, Reason: reason, Err: err}
	}
	if err := expectEnd(dec); err != nil {
		return nil, err
	}

	var raw []CppcheckError
	if results.Errors != nil {
		raw = results.Errors.Errors
	}

	findings := make([]report.Finding, 0, len(raw))
	for i, e := range raw {
		f, err := p.errorToFinding(i, e)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}

	opts := []report.ReportOption{report.WithFormatVersion(results.Version)}
	if results.Tool != nil {
		opts = append(opts, report.WithToolVersion(results.Tool.Version))
	}
	return report.NewReport(findings, opts...), nil
}

// expectEnd consumes the rest of the document. Only whitespace, comments
// and processing instructions may follow the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &report.MalformedReportError{Index: -1, Reason: "unparseable markup after root element", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return &report.MalformedReportError{Element: t.Name.Local, Index: -1, Reason: "content after root element"}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return &report.MalformedReportError{Index: -1, Reason: "text after root element"}
			}
		}
	}
}

// errorToFinding validates one <error> element and converts it.
func (p *Parser) errorToFinding(index int, e CppcheckError) (report.Finding, error) {
	if e.ID == nil || *e.ID == "" {
		return report.Finding{}, missingAttr("error", index, "id")
	}
	if e.Severity == nil {
		return report.Finding{}, missingAttr("error", index, "severity")
	}
	if e.Msg == nil {
		return report.Finding{}, missingAttr("error", index, "msg")
	}

	var opts []report.FindingOption
	if e.Verbose != nil {
		opts = append(opts, report.WithDetailedMessage(*e.Verbose))
	}
	if e.File0 != nil {
		opts = append(opts, report.WithSourceFileHint(*e.File0))
	}
	if e.CWE != nil {
		opts = append(opts, report.WithWeaknessReference(*e.CWE))
	}
	if e.Symbol != nil {
		opts = append(opts, report.WithSymbol(*e.Symbol))
	}

	if len(e.Locations) > 0 {
		locs := make([]report.Location, 0, len(e.Locations))
		for i, l := range e.Locations {
			loc, err := p.toLocation(i, l)
			if err != nil {
				var mErr *report.MalformedReportError
				if errors.As(err, &mErr) {
					mErr.Within = fmt.Sprintf("<error> #%d", index)
				}
				return report.Finding{}, err
			}
			locs = append(locs, loc)
		}
		opts = append(opts, report.WithLocations(locs...))
	}

	return report.NewFinding(*e.ID, *e.Severity, *e.Msg, opts...), nil
}

// toLocation validates one <location> element and converts it.
func (p *Parser) toLocation(index int, l CppcheckLocation) (report.Location, error) {
	if l.File == nil {
		return report.Location{}, missingAttr("location", index, "file")
	}
	line, err := parseCoordinate(index, "line", l.Line)
	if err != nil {
		return report.Location{}, err
	}
	column, err := parseCoordinate(index, "column", l.Column)
	if err != nil {
		return report.Location{}, err
	}
	return report.NewLocation(*l.File, line, column), nil
}

// parseCoordinate parses a line or column attribute as a non-negative 32-bit integer.
func parseCoordinate(index int, attr string, value *string) (uint32, error) {
	if value == nil {
		return 0, missingAttr("location", index, attr)
	}
	n, err := strconv.ParseUint(*value, 10, 32)
	if err != nil {
		return 0, &report.MalformedReportError{
			Element:   "location",
			Index:     index,
			Attribute: attr,
			Value:     *value,
			Reason:    "not a non-negative integer",
			Err:       err,
		}
	}
	return uint32(n), nil
}

func missingAttr(element string, index int, attr string) error {
	return &report.MalformedReportError{
		Element:   element,
		Index:     index,
		Attribute: attr,
		Reason:    "required attribute missing",
	}
}
