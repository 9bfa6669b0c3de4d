package detectors

import (
	"strings"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// LineKind classifies a line with respect to block comments.
type LineKind int

const (
	// LineCode is a line with no block comment marker outside a block comment.
	LineCode LineKind = iota
	// LineInBlockComment is a line entirely inside a block comment opened earlier.
	LineInBlockComment
	// LineCommentBoundary is a line carrying a `/*` or `*/` marker.
	LineCommentBoundary
)

func (k LineKind) String() string {
	switch k {
	case LineInBlockComment:
		return "in-block-comment"
	case LineCommentBoundary:
		return "comment-boundary"
	default:
		return "code"
	}
}

// ScannedLine is one source line as seen by the comment-aware scanner.
type ScannedLine struct {
	Number int
	// Text is the raw line without its terminator.
	Text string
	// Code is Text with comments and literal contents replaced by spaces.
	Code string
	Kind LineKind
	// LineComment is set when a `//` comment starts on the line.
	LineComment bool
}

// Blank reports whether the line holds only whitespace.
func (l ScannedLine) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Commented reports whether any comment touches the line.
func (l ScannedLine) Commented() bool {
	return l.Kind != LineCode || l.LineComment
}

// FullyCommented reports whether the line has comment text and no code.
func (l ScannedLine) FullyCommented() bool {
	return l.Commented() && strings.TrimSpace(l.Code) == ""
}

// Preprocessor reports whether the line is a preprocessor directive.
func (l ScannedLine) Preprocessor() bool {
	return strings.HasPrefix(strings.TrimSpace(l.Text), "#")
}

// Define reports whether the line is a #define directive.
func (l ScannedLine) Define() bool {
	trimmed := strings.TrimSpace(l.Text)
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}

	return strings.HasPrefix(strings.TrimSpace(trimmed[1:]), "define")
}

// CommentScanner tracks block comment state across consecutive lines.
// The zero value starts in code.
type CommentScanner struct {
	inBlock bool
}

// InBlockComment reports whether the scanner is inside an open block comment.
func (s *CommentScanner) InBlockComment() bool {
	return s.inBlock
}

// Next classifies raw (line number n) and advances the scanner state.
// Comment markers inside string or character literals are ignored.
func (s *CommentScanner) Next(n int, raw string) ScannedLine {
	text := strings.TrimRight(raw, "\r\n")
	code := []byte(text)
	startedInBlock := s.inBlock
	boundary := false
	lineComment := false

	for i := 0; i < len(text); {
		if s.inBlock {
			if strings.HasPrefix(text[i:], "*/") {
				s.inBlock = false
				boundary = true

				blank(code, i, i+2)
				i += 2

				continue
			}

			code[i] = ' '
			i++

			continue
		}

		switch {
		case strings.HasPrefix(text[i:], "//"):
			lineComment = true

			blank(code, i, len(code))
			i = len(text)
		case strings.HasPrefix(text[i:], "/*"):
			s.inBlock = true
			boundary = true

			blank(code, i, i+2)
			i += 2
		case text[i] == '"' || text[i] == '\'':
			end, closed := literalEnd(text, i)
			contentEnd := end
			if closed {
				contentEnd = end - 1
			}

			blank(code, i+1, contentEnd)
			i = end
		default:
			i++
		}
	}

	kind := LineCode

	switch {
	case boundary:
		kind = LineCommentBoundary
	case startedInBlock:
		kind = LineInBlockComment
	}

	return ScannedLine{
		Number:      n,
		Text:        text,
		Code:        string(code),
		Kind:        kind,
		LineComment: lineComment,
	}
}

// Scan runs a fresh scanner over the whole document.
func Scan(doc m.SourceDocument) []ScannedLine {
	var scanner CommentScanner

	lines := make([]ScannedLine, 0, doc.Len())
	for i, raw := range doc.Lines {
		lines = append(lines, scanner.Next(i+1, raw))
	}

	return lines
}
