package detectors

import (
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// GlobalVariableDetector reports every file-scope variable.
type GlobalVariableDetector struct{}

func (GlobalVariableDetector) Name() string         { return GlobalVariable }
func (GlobalVariableDetector) Severity() m.Severity { return m.SeverityWarning }
func (GlobalVariableDetector) Description() string  { return "file-scope variable declarations" }

func (d GlobalVariableDetector) Detect(_ m.SourceDocument, decls []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, decl := range m.FilterDeclarations(decls, m.KindVariable) {
		findings = append(findings, newFinding(d, decl.Name, decl.Line, ""))
	}

	return findings
}

// TypedefNamingDetector reports typedef names that do not start uppercase.
type TypedefNamingDetector struct{}

func (TypedefNamingDetector) Name() string         { return TypedefNaming }
func (TypedefNamingDetector) Severity() m.Severity { return m.SeverityWarning }
func (TypedefNamingDetector) Description() string  { return "typedef names must start with an upper case letter" }

func (d TypedefNamingDetector) Detect(_ m.SourceDocument, decls []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, decl := range m.FilterDeclarations(decls, m.KindTypedef) {
		if decl.Name == "" || startsUpper(decl.Name) {
			continue
		}

		findings = append(findings, newFinding(d, decl.Name, decl.Line, "Type definition should start with upper case"))
	}

	return findings
}

// FunctionNamingDetector reports function names that start uppercase.
type FunctionNamingDetector struct{}

func (FunctionNamingDetector) Name() string         { return FunctionNaming }
func (FunctionNamingDetector) Severity() m.Severity { return m.SeverityWarning }
func (FunctionNamingDetector) Description() string  { return "function names must not start with an upper case letter" }

func (d FunctionNamingDetector) Detect(_ m.SourceDocument, decls []m.Declaration) []m.Finding {
	var findings []m.Finding

	for _, decl := range m.FilterDeclarations(decls, m.KindFunction) {
		if !startsUpper(decl.Name) {
			continue
		}

		findings = append(findings, newFinding(d, decl.Name, decl.Line, "Function starts with upper case"))
	}

	return findings
}

func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}
