package model

import "fmt"

// Severity is the importance of a finding.
type Severity string

const (
	// SeverityError marks a rule violation.
	SeverityError Severity = "ERROR"
	// SeverityWarning marks a questionable construct.
	SeverityWarning Severity = "WARNING"
)

// Finding is one reported defect instance.
type Finding struct {
	Severity Severity `yaml:"severity"`
	Detector string   `yaml:"detector"`
	Subject  string   `yaml:"subject"`
	Line     int      `yaml:"line"`
	Note     string   `yaml:"note,omitempty"`
}

// Valid reports whether the finding carries a detector and a real line.
func (f Finding) Valid() bool {
	return f.Detector != "" && f.Line >= 1
}

// String renders the finding in the one-line text format:
//
//	[SEVERITY] [DetectorName] found: <subject> at Line: <line> <note>
func (f Finding) String() string {
	s := fmt.Sprintf("[%s] [%s] found: %s at Line: %d", f.Severity, f.Detector, f.Subject, f.Line)
	if f.Note != "" {
		s += " " + f.Note
	}

	return s
}
