package detectors

import "strings"

// ParseArguments splits the text between a signature's outer parentheses
// into trimmed arguments. Commas inside nested parentheses do not split, and
// empty segments and a lone `void` are dropped.
func ParseArguments(signature string) []string {
	var (
		args    []string
		current strings.Builder
		depth   int
	)

	flush := func() {
		arg := strings.TrimSpace(current.String())
		if arg != "" && arg != "void" {
			args = append(args, arg)
		}

		current.Reset()
	}

	for _, ch := range signature {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				flush()
				continue
			}
		}

		current.WriteRune(ch)
	}

	flush()

	return args
}

// JoinSignature collects the parameter list of the signature starting on
// startLine, joining lines until the first opening parenthesis is balanced.
// It returns the text between the outer parentheses and whether the list was
// closed; an unterminated list returns what was read.
func JoinSignature(lines []ScannedLine, startLine int) (string, bool) {
	if startLine < 1 {
		startLine = 1
	}

	var b strings.Builder

	depth := 0
	open := false

	for i := startLine - 1; i < len(lines); i++ {
		for _, ch := range lines[i].Code {
			if !open {
				if ch == '(' {
					open = true
					depth = 1
				}

				continue
			}

			switch ch {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return b.String(), true
				}
			}

			b.WriteRune(ch)
		}

		if open {
			b.WriteByte(' ')
		}
	}

	return b.String(), false
}
