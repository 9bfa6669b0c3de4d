package detectors

// StripLiterals blanks the contents of every string and character literal in
// line. Quotes are kept and each content byte becomes a space, so columns
// and lengths do not move. An unterminated literal is blanked to the end of
// the line.
func StripLiterals(line string) string {
	buf := []byte(line)

	for i := 0; i < len(buf); i++ {
		if line[i] != '"' && line[i] != '\'' {
			continue
		}

		end, closed := literalEnd(line, i)
		contentEnd := end
		if closed {
			contentEnd = end - 1
		}

		blank(buf, i+1, contentEnd)
		i = end - 1
	}

	return string(buf)
}

// literalEnd returns the index just past the closing quote of the literal
// opened at line[start]. Backslash escapes are skipped.
func literalEnd(line string, start int) (int, bool) {
	quote := line[start]

	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			return i + 1, true
		case '\n', '\r':
			return i, false
		}
	}

	return len(line), false
}

func blank(buf []byte, from, to int) {
	if to > len(buf) {
		to = len(buf)
	}

	for i := from; i < to; i++ {
		if buf[i] == '\n' || buf[i] == '\r' {
			continue
		}

		buf[i] = ' '
	}
}
