package detectors

import (
	m "github.com/mouse-blink/cstyle/internal/model"
)

// FunctionLength counts the effective lines of the function whose
// declaration sits on startLine. Blank and fully commented lines are
// skipped, braces are only counted in code, and the walk stops on the line
// where the brace depth returns to zero after the body opened. That line is
// counted. Reaching the end of the file first returns what was counted.
func FunctionLength(lines []ScannedLine, startLine int) int {
	if startLine < 1 {
		startLine = 1
	}

	length := 0
	depth := 0
	opened := false

	for i := startLine - 1; i < len(lines); i++ {
		line := lines[i]
		if line.Blank() || line.FullyCommented() {
			continue
		}

		length++

		for _, ch := range line.Code {
			switch ch {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}
		}

		if opened && depth <= 0 {
			break
		}
	}

	return max(length, 1)
}

// Extent computes the FunctionExtent of a function declaration.
func Extent(lines []ScannedLine, decl m.Declaration) m.FunctionExtent {
	return m.FunctionExtent{
		Name:      decl.Name,
		StartLine: decl.Line,
		Length:    FunctionLength(lines, decl.Line),
	}
}
