package detectors

import (
	"fmt"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// ArgumentCountDetector reports functions taking no arguments or at least
// MaxArguments of them.
type ArgumentCountDetector struct {
	MaxArguments int
}

func (ArgumentCountDetector) Name() string          { return ArgumentCount }
func (ArgumentCountDetector) Severity() m.Severity  { return m.SeverityWarning }
func (d ArgumentCountDetector) Description() string { return fmt.Sprintf("functions with no arguments or %d+ arguments", d.MaxArguments) }

func (d ArgumentCountDetector) Detect(doc m.SourceDocument, decls []m.Declaration) []m.Finding {
	functions := m.FilterDeclarations(decls, m.KindFunction)
	if len(functions) == 0 {
		return nil
	}

	lines := Scan(doc)

	var findings []m.Finding

	for _, decl := range functions {
		if decl.Line < 1 || decl.Line > len(lines) {
			continue
		}

		// An unterminated list still yields a best-effort count.
		signature, _ := JoinSignature(lines, decl.Line)
		count := len(ParseArguments(signature))

		if count != 0 && count < d.MaxArguments {
			continue
		}

		findings = append(findings, newFinding(d, decl.Name, decl.Line,
			fmt.Sprintf("Are you sure that many arguments (%d) are needed?", count)))
	}

	return findings
}
