package domain

import (
	"strings"

	"github.com/mouse-blink/cstyle/internal/domain/detectors"
	m "github.com/mouse-blink/cstyle/internal/model"
)

const (
	ignoreDirective     = "cstyle:ignore"
	ignoreFileDirective = "cstyle:ignore-file"
)

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(detector string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(detector)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads the detector list following a directive.
// An empty list ignores every detector.
func parseIgnoreDirective(rest string) ignoreRule {
	rest = strings.TrimSpace(rest)
	if idx := strings.Index(rest, "*/"); idx >= 0 {
		rest = rest[:idx]
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

// buildIgnoreIndex collects suppression directives from comments.
// `cstyle:ignore-file` applies to the whole file; `cstyle:ignore` applies
// to its own line when it trails code and to the next line otherwise.
func buildIgnoreIndex(lines []detectors.ScannedLine) ignoreIndex {
	index := ignoreIndex{line: make(map[int]ignoreRule)}

	for _, line := range lines {
		if !line.Commented() {
			continue
		}

		text := commentText(line)

		pos := strings.Index(text, ignoreDirective)
		if pos < 0 {
			continue
		}

		if strings.HasPrefix(text[pos:], ignoreFileDirective) {
			mergeIgnoreRule(&index.file, parseIgnoreDirective(text[pos+len(ignoreFileDirective):]))
			continue
		}

		rule := parseIgnoreDirective(text[pos+len(ignoreDirective):])

		target := line.Number
		if line.FullyCommented() {
			target = line.Number + 1
		}

		current := index.line[target]
		mergeIgnoreRule(&current, rule)
		index.line[target] = current
	}

	return index
}

// commentText returns the part of a commented line from the first comment
// marker on. Markers inside string and char literals do not count.
func commentText(line detectors.ScannedLine) string {
	if line.Kind == detectors.LineInBlockComment {
		return line.Text
	}

	stripped := detectors.StripLiterals(line.Text)

	start := -1
	closing := false

	for _, marker := range []string{"//", "/*", "*/"} {
		if i := strings.Index(stripped, marker); i >= 0 && (start < 0 || i < start) {
			start = i
			closing = marker == "*/"
		}
	}

	switch {
	case start < 0:
		return ""
	case closing:
		// The comment opened on an earlier line.
		return line.Text
	default:
		return line.Text[start:]
	}
}

func (idx ignoreIndex) empty() bool {
	return !idx.file.all && len(idx.file.names) == 0 && len(idx.line) == 0
}

// filter drops the findings suppressed by a directive, keeping order.
func (idx ignoreIndex) filter(findings []m.Finding) []m.Finding {
	if idx.empty() {
		return findings
	}

	kept := make([]m.Finding, 0, len(findings))

	for _, finding := range findings {
		if idx.file.ignores(finding.Detector) {
			continue
		}

		if rule, ok := idx.line[finding.Line]; ok && rule.ignores(finding.Detector) {
			continue
		}

		kept = append(kept, finding)
	}

	return kept
}
