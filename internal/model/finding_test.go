package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinding_String(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{
			name:    "with note",
			finding: Finding{Severity: SeverityError, Detector: "FunctionLength", Subject: "parse", Line: 12, Note: "Function length exceeded: 62"},
			want:    "[ERROR] [FunctionLength] found: parse at Line: 12 Function length exceeded: 62",
		},
		{
			name:    "without note",
			finding: Finding{Severity: SeverityWarning, Detector: "GlobalVariable", Subject: "counter", Line: 3},
			want:    "[WARNING] [GlobalVariable] found: counter at Line: 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.finding.String())
		})
	}
}

func TestFinding_Valid(t *testing.T) {
	assert.True(t, Finding{Detector: "LongLine", Line: 1}.Valid())
	assert.False(t, Finding{Detector: "", Line: 1}.Valid())
	assert.False(t, Finding{Detector: "LongLine", Line: 0}.Valid())
}

func TestNewSourceDocument(t *testing.T) {
	doc := NewSourceDocument(File{Path: "a.c"}, "int a;\r\nint b;\nint c;")

	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, "int a;\r\n", doc.Line(1))
	assert.Equal(t, "int b;\n", doc.Line(2))
	assert.Equal(t, "int c;", doc.Line(3))
	assert.Empty(t, doc.Line(0))
	assert.Empty(t, doc.Line(4))

	empty := NewSourceDocument(File{}, "")
	assert.Equal(t, 0, empty.Len())
}

func TestFilterDeclarations(t *testing.T) {
	decls := []Declaration{
		{Name: "g", Line: 1, Kind: KindVariable},
		{Name: "main", Line: 4, Kind: KindFunction},
		{Name: "h", Line: 2, Kind: KindVariable},
	}

	got := FilterDeclarations(decls, KindVariable)
	assert.Equal(t, []Declaration{decls[0], decls[2]}, got)
	assert.Empty(t, FilterDeclarations(decls, KindTypedef))
}
