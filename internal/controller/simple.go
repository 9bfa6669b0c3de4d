package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// SimpleUI implements UI by printing through the cobra command's writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
	styles styles
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	ui := &SimpleUI{cmd: cmd, config: newStartConfig()}
	ui.styles = newStyles(cmd.OutOrStdout(), ui.config.color)

	return ui
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)
	s.styles = newStyles(s.cmd.OutOrStdout(), s.config.color)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayReport prints one line per finding, in reporting order.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	for _, finding := range report.Findings {
		s.printf("%s\n", s.styles.formatFinding(finding))
	}

	if s.config.summary {
		s.printf("\n%s", renderSummary(report))
	}

	return nil
}

// DisplayReportSaved prints where the report was written.
func (s *SimpleUI) DisplayReportSaved(path m.Path) {
	s.printf("report saved to %s\n", path)
}

// DisplayReports prints stored reports followed by an index table.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("no reports found\n")
		return nil
	}

	for _, report := range reports {
		s.printf("%s\n", s.styles.path.Render(string(report.Source.Path)))

		for _, finding := range report.Findings {
			s.printf("  %s\n", s.styles.formatFinding(finding))
		}
	}

	s.printf("\n%s", renderReportsIndex(reports))

	return nil
}

// DisplayRules prints the detector table.
func (s *SimpleUI) DisplayRules(rules []m.Rule) error {
	s.printf("%s", renderRules(rules))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
