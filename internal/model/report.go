package model

// Report holds the findings of one analysis run over a single source file.
type Report struct {
	Source   File
	Findings []Finding
}

// CountBySeverity returns how many findings carry the given severity.
func (r Report) CountBySeverity(severity Severity) int {
	count := 0

	for _, finding := range r.Findings {
		if finding.Severity == severity {
			count++
		}
	}

	return count
}
