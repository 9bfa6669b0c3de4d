package detectors

import (
	"fmt"

	m "github.com/mouse-blink/cstyle/internal/model"
)

const mainFunction = "main"

// FunctionLengthDetector reports functions whose extent reaches the limit.
// main has its own, tighter limit.
type FunctionLengthDetector struct {
	MaxLength     int
	MaxMainLength int
}

func (FunctionLengthDetector) Name() string          { return FunctionLen }
func (FunctionLengthDetector) Severity() m.Severity  { return m.SeverityError }
func (d FunctionLengthDetector) Description() string { return fmt.Sprintf("functions of %d+ lines, main of %d+ lines", d.MaxLength, d.MaxMainLength) }

func (d FunctionLengthDetector) Detect(doc m.SourceDocument, decls []m.Declaration) []m.Finding {
	functions := m.FilterDeclarations(decls, m.KindFunction)
	if len(functions) == 0 {
		return nil
	}

	lines := Scan(doc)

	var findings []m.Finding

	for _, decl := range functions {
		extent := Extent(lines, decl)

		limit, note := d.MaxLength, "Function length exceeded: %d"
		if decl.Name == mainFunction {
			limit, note = d.MaxMainLength, "Main function length exceeded: %d"
		}

		if extent.Length < limit {
			continue
		}

		findings = append(findings, newFinding(d, decl.Name, decl.Line, fmt.Sprintf(note, extent.Length)))
	}

	return findings
}
