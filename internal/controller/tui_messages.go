package controller

import (
	"fmt"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// Message types.
type reportSavedMsg struct {
	path m.Path
}

// List item types.
type findingItem struct {
	path    m.Path
	finding m.Finding
}

func (f findingItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s %s", f.finding.Severity, f.finding.Detector, f.finding.Subject, f.finding.Note, f.path)
}

func findingItems(reports ...m.Report) []findingItem {
	var items []findingItem

	for _, report := range reports {
		for _, finding := range report.Findings {
			items = append(items, findingItem{path: report.Source.Path, finding: finding})
		}
	}

	return items
}
