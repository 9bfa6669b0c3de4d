package detectors

import (
	"strings"

	m "github.com/mouse-blink/cstyle/internal/model"
)

func newDoc(lines ...string) m.SourceDocument {
	return m.NewSourceDocument(m.File{Path: "test.c"}, strings.Join(lines, "\n")+"\n")
}

func repeatLine(line string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}

	return lines
}

func subjects(findings []m.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Subject)
	}

	return out
}
