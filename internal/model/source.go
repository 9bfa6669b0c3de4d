// Package model defines the data structures shared by the C style checker.
package model

import "strings"

// Path represents a file system path.
type Path string

// File identifies a source file together with its content fingerprint.
type File struct {
	Path Path
	Hash string
}

// SourceDocument is an immutable, 1-indexed view of a C source file.
// Lines keep their original terminators so length checks see the raw text.
type SourceDocument struct {
	File
	Lines []string
}

// NewSourceDocument splits content into lines, keeping each line terminator.
func NewSourceDocument(file File, content string) SourceDocument {
	lines := make([]string, 0, strings.Count(content, "\n")+1)

	for content != "" {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}

		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}

	return SourceDocument{File: file, Lines: lines}
}

// Len returns the number of lines in the document.
func (d SourceDocument) Len() int {
	return len(d.Lines)
}

// Line returns the raw text of line n (1-indexed) or "" when out of range.
func (d SourceDocument) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}

	return d.Lines[n-1]
}
