package detectors

import (
	m "github.com/mouse-blink/cstyle/internal/model"
)

var pointerStepPattern = NewRegexPattern(`(\*+)([A-Za-z_]\w*)(\+\+|--)`)

// PointerIncrementDetector reports dereferences combined with ++ or --,
// such as `*p++` or `**q--`.
type PointerIncrementDetector struct{}

func (PointerIncrementDetector) Name() string         { return PointerIncrement }
func (PointerIncrementDetector) Severity() m.Severity { return m.SeverityWarning }
func (PointerIncrementDetector) Description() string  { return "dereference combined with ++ or --" }

func (d PointerIncrementDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, line := range Scan(doc) {
		for _, match := range pointerStepPattern.FindAll(line.Code) {
			findings = append(findings, newFinding(d, match.Text, line.Number, ""))
		}
	}

	return findings
}
