package detectors

import (
	m "github.com/mouse-blink/cstyle/internal/model"
)

var shortIdentPattern = NewRegexPattern(`\b[a-zA-Z]{1,2}\b`)

// shortIdentStoplist holds the conventional short names that are accepted.
var shortIdentStoplist = map[string]struct{}{
	"i":  {},
	"j":  {},
	"c":  {},
	"if": {},
	"n":  {},
}

// ShortVariableDetector reports one- and two-letter identifiers.
type ShortVariableDetector struct{}

func (ShortVariableDetector) Name() string         { return ShortVariable }
func (ShortVariableDetector) Severity() m.Severity { return m.SeverityError }
func (ShortVariableDetector) Description() string  { return "identifiers of one or two letters except i, j, c, n" }

func (d ShortVariableDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, line := range Scan(doc) {
		if line.Commented() || line.Preprocessor() {
			continue
		}

		for _, match := range shortIdentPattern.FindAll(line.Code) {
			if _, ok := shortIdentStoplist[match.Text]; ok {
				continue
			}

			findings = append(findings, newFinding(d, match.Text, line.Number, ""))
		}
	}

	return findings
}
