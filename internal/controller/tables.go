package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/cstyle/internal/model"
)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

// renderSummary counts findings per detector in first-seen order.
func renderSummary(report m.Report) string {
	var order []string

	severity := make(map[string]m.Severity)
	counts := make(map[string]int)

	for _, finding := range report.Findings {
		if _, ok := counts[finding.Detector]; !ok {
			order = append(order, finding.Detector)
			severity[finding.Detector] = finding.Severity
		}

		counts[finding.Detector]++
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Detector", "Severity", "Findings"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, name := range order {
		table.Append([]string{name, string(severity[name]), fmt.Sprintf("%d", counts[name])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Errors %d", report.CountBySeverity(m.SeverityError)),
		fmt.Sprintf("Warnings %d", report.CountBySeverity(m.SeverityWarning)),
		fmt.Sprintf("%d", len(report.Findings)),
	})

	table.Render()

	return buf.String()
}

func renderRules(rules []m.Rule) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Detector", "Severity", "Reports"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rule := range rules {
		table.Append([]string{rule.Name, string(rule.Severity), rule.Description})
	}

	table.Render()

	return buf.String()
}

func renderReportsIndex(reports []m.Report) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Path", "Hash", "Errors", "Warnings"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	errorsTotal, warningsTotal := 0, 0

	for _, report := range reports {
		errs := report.CountBySeverity(m.SeverityError)
		warns := report.CountBySeverity(m.SeverityWarning)
		errorsTotal += errs
		warningsTotal += warns

		table.Append([]string{
			string(report.Source.Path),
			shortHash(report.Source.Hash),
			fmt.Sprintf("%d", errs),
			fmt.Sprintf("%d", warns),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", errorsTotal),
		fmt.Sprintf("%d", warningsTotal),
	})

	table.Render()

	return buf.String()
}

func shortHash(hash string) string {
	const n = 12
	if len(hash) <= n {
		return hash
	}

	return hash[:n]
}
