// Package detectors implements the line scanning utilities and the
// independent style rules evaluated over a C source document.
package detectors

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// Detector names, as printed in findings.
const (
	GlobalVariable   = "GlobalVariable"
	TypedefNaming    = "TypedefNaming"
	PointerIncrement = "PointerIncrement"
	FunctionNaming   = "FunctionNaming"
	MagicConstant    = "MagicConstant"
	LongLine         = "LongLine"
	ShortVariable    = "ShortVariable"
	ExplicitCast     = "ExplicitCast"
	FunctionLen      = "FunctionLength"
	CommentGap       = "CommentGap"
	ArgumentCount    = "ArgumentCount"
)

// Detector is a read-only rule over a source document and its declarations.
// Implementations must not keep state between calls.
type Detector interface {
	Name() string
	Severity() m.Severity
	Description() string
	Detect(doc m.SourceDocument, decls []m.Declaration) []m.Finding
}

// Thresholds holds the numeric limits used by the sized rules.
type Thresholds struct {
	MaxFunctionLength int
	MaxMainLength     int
	LongLine          int
	CommentGap        int
	MaxArguments      int
}

// DefaultThresholds returns the stock limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxFunctionLength: 50,
		MaxMainLength:     35,
		LongLine:          100,
		CommentGap:        40,
		MaxArguments:      6,
	}
}

// All returns every detector in reporting order.
func All(th Thresholds) []Detector {
	return []Detector{
		GlobalVariableDetector{},
		TypedefNamingDetector{},
		PointerIncrementDetector{},
		FunctionNamingDetector{},
		MagicConstantDetector{},
		LongLineDetector{Limit: th.LongLine},
		ShortVariableDetector{},
		ExplicitCastDetector{},
		FunctionLengthDetector{MaxLength: th.MaxFunctionLength, MaxMainLength: th.MaxMainLength},
		CommentGapDetector{Threshold: th.CommentGap},
		ArgumentCountDetector{MaxArguments: th.MaxArguments},
	}
}

// Select returns the detectors of set whose names appear in names, keeping
// the order of set. Names are matched case-insensitively. An empty names
// list selects everything.
func Select(set []Detector, names []string) ([]Detector, error) {
	if len(names) == 0 {
		return set, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.ToLower(strings.TrimSpace(name))] = false
	}

	var selected []Detector

	for _, d := range set {
		key := strings.ToLower(d.Name())
		if _, ok := wanted[key]; ok {
			wanted[key] = true

			selected = append(selected, d)
		}
	}

	for name, found := range wanted {
		if !found {
			return nil, fmt.Errorf("unknown detector: %s", name)
		}
	}

	return selected, nil
}

func newFinding(d Detector, subject string, line int, note string) m.Finding {
	return m.Finding{
		Severity: d.Severity(),
		Detector: d.Name(),
		Subject:  subject,
		Line:     line,
		Note:     note,
	}
}
