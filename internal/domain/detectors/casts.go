package detectors

import (
	"fmt"

	m "github.com/mouse-blink/cstyle/internal/model"
)

var castPattern = NewRegexPattern(
	`\(\s*(int|float|double|char|long|short|signed|unsigned|void)\s*\)\s*([a-zA-Z_]\w*(\s*\*)?)`,
)

// ExplicitCastDetector reports C-style casts to a primitive type.
type ExplicitCastDetector struct{}

func (ExplicitCastDetector) Name() string         { return ExplicitCast }
func (ExplicitCastDetector) Severity() m.Severity { return m.SeverityError }
func (ExplicitCastDetector) Description() string  { return "casts to a primitive type" }

func (d ExplicitCastDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, line := range Scan(doc) {
		for _, match := range castPattern.FindAll(line.Code) {
			castType, target := match.Groups[0], match.Groups[1]
			note := fmt.Sprintf("Variable %s is casted to %s", target, castType)

			findings = append(findings, newFinding(d, castType, line.Number, note))
		}
	}

	return findings
}
