package report

// Finding is one diagnostic instance emitted by the analyzer.
// It is immutable after creation; accessors hand out copies.
type Finding struct {
	ruleID          string
	severity        string
	message         string
	detailedMessage string
	sourceFileHint  *string
	weaknessRef     *string
	symbol          *string
	locations       []Location
}

// FindingOption is a functional option for creating findings.
type FindingOption func(*Finding)

// NewFinding creates a finding with its required fields.
// Severity is kept as the analyzer's own label and is not validated.
func NewFinding(ruleID, severity, message string, opts ...FindingOption) Finding {
	f := Finding{
		ruleID:   ruleID,
		severity: severity,
		message:  message,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithDetailedMessage sets the long-form description.
func WithDetailedMessage(msg string) FindingOption {
	return func(f *Finding) { f.detailedMessage = msg }
}

// WithSourceFileHint sets the translation-unit file the analyzer associated with the finding.
func WithSourceFileHint(file string) FindingOption {
	return func(f *Finding) { f.sourceFileHint = &file }
}

// WithWeaknessReference sets the external weakness classification (a CWE number).
func WithWeaknessReference(ref string) FindingOption {
	return func(f *Finding) { f.weaknessRef = &ref }
}

// WithSymbol sets the program symbol the finding concerns.
func WithSymbol(name string) FindingOption {
	return func(f *Finding) { f.symbol = &name }
}

// WithLocations sets the source positions, in the order given.
func WithLocations(locs ...Location) FindingOption {
	return func(f *Finding) {
		f.locations = append([]Location(nil), locs...)
	}
}

// RuleID returns the analyzer's identifier for the violated rule.
func (f Finding) RuleID() string { return f.ruleID }

// Severity returns the analyzer's severity label.
func (f Finding) Severity() string { return f.severity }

// Message returns the short description.
func (f Finding) Message() string { return f.message }

// DetailedMessage returns the long-form description. It may equal Message.
func (f Finding) DetailedMessage() string { return f.detailedMessage }

// SourceFileHint returns the auxiliary file name, if the analyzer emitted one.
func (f Finding) SourceFileHint() (string, bool) { return optional(f.sourceFileHint) }

// WeaknessReference returns the weakness classification, if any.
func (f Finding) WeaknessReference() (string, bool) { return optional(f.weaknessRef) }

// Symbol returns the affected symbol name, if any.
func (f Finding) Symbol() (string, bool) { return optional(f.symbol) }

// Locations returns a copy of the source positions in report order.
func (f Finding) Locations() []Location {
	if len(f.locations) == 0 {
		return nil
	}
	return append([]Location(nil), f.locations...)
}

// PrimaryLocation returns the first reported location.
func (f Finding) PrimaryLocation() (Location, bool) {
	if len(f.locations) == 0 {
		return Location{}, false
	}
	return f.locations[0], true
}

func optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
