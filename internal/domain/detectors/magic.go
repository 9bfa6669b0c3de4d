package detectors

import (
	"strconv"

	m "github.com/mouse-blink/cstyle/internal/model"
)

var integerPattern = NewRegexPattern(`\b\d+\b`)

// MagicConstantDetector reports integer literals other than 0, 1 and 2.
// Lines carrying any comment and #define lines are skipped entirely.
type MagicConstantDetector struct{}

func (MagicConstantDetector) Name() string         { return MagicConstant }
func (MagicConstantDetector) Severity() m.Severity { return m.SeverityError }
func (MagicConstantDetector) Description() string  { return "integer literals other than 0, 1 and 2" }

func (d MagicConstantDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, line := range Scan(doc) {
		if line.Commented() || line.Define() {
			continue
		}

		for _, match := range integerPattern.FindAll(line.Code) {
			if allowedConstant(match.Text) {
				continue
			}

			findings = append(findings, newFinding(d, match.Text, line.Number, ""))
		}
	}

	return findings
}

func allowedConstant(literal string) bool {
	value, err := strconv.ParseUint(literal, 10, 64)
	if err != nil {
		return false
	}

	return value <= 2
}
