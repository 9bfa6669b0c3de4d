package detectors

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// LongLineDetector reports lines whose raw length, terminator included,
// exceeds Limit characters.
type LongLineDetector struct {
	Limit int
}

func (LongLineDetector) Name() string          { return LongLine }
func (LongLineDetector) Severity() m.Severity  { return m.SeverityError }
func (d LongLineDetector) Description() string { return fmt.Sprintf("lines longer than %d characters", d.Limit) }

func (d LongLineDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	for i, raw := range doc.Lines {
		length := utf8.RuneCountInString(raw)
		if length <= d.Limit {
			continue
		}

		findings = append(findings, newFinding(d, strconv.Itoa(length), i+1,
			fmt.Sprintf("Line longer than %d characters", d.Limit)))
	}

	return findings
}
