package detectors

import (
	"fmt"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// CommentGapDetector reports runs of at least Threshold non-blank lines
// without any comment. Blank lines neither extend nor break a run.
type CommentGapDetector struct {
	Threshold int
}

func (CommentGapDetector) Name() string          { return CommentGap }
func (CommentGapDetector) Severity() m.Severity  { return m.SeverityError }
func (d CommentGapDetector) Description() string { return fmt.Sprintf("%d+ consecutive lines without a comment", d.Threshold) }

func (d CommentGapDetector) Detect(doc m.SourceDocument, _ []m.Declaration) []m.Finding {
	var findings []m.Finding

	start, length := 0, 0

	flush := func() {
		if length >= d.Threshold && length > 0 {
			findings = append(findings, newFinding(d, "uncommented block", start,
				fmt.Sprintf("Number of lines without comments exceeded: %d", length)))
		}

		start, length = 0, 0
	}

	for _, line := range Scan(doc) {
		if line.Blank() {
			continue
		}

		if line.Commented() {
			flush()
			continue
		}

		if length == 0 {
			start = line.Number
		}

		length++
	}

	flush()

	return findings
}
