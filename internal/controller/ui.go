// Package controller provides output adapters for displaying analysis results.
package controller

import (
	m "github.com/mouse-blink/cstyle/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	color   bool
	summary bool
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{color: true}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// WithColor enables or disables styled severity output.
func WithColor(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.color = enabled
	}
}

// WithSummary appends a per-detector count table after the findings.
func WithSummary() StartOption {
	return func(c *StartConfig) {
		c.summary = true
	}
}

// UI defines the interface for presenting findings, reports and rules.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayReport(report m.Report) error
	DisplayReportSaved(path m.Path)
	DisplayReports(reports []m.Report) error
	DisplayRules(rules []m.Rule) error
}
