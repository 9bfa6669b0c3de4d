package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/cstyle/internal/adapter"
	"github.com/mouse-blink/cstyle/internal/controller"
	"github.com/mouse-blink/cstyle/internal/domain/detectors"
	m "github.com/mouse-blink/cstyle/internal/model"
)

// CheckArgs holds the inputs of one analysis run.
type CheckArgs struct {
	Path m.Path
	// Only restricts the run to the named detectors.
	Only []string
	// Reports, when set, is the directory the report is saved into.
	Reports m.Path
}

// ViewArgs holds the inputs for displaying stored reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the top-level operations of the analyzer.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	View(args ViewArgs) error
	Rules() error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	provider    adapter.DeclarationProvider
	reportStore adapter.ReportStore
	ui          controller.UI
	analyzer    Analyzer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	provider adapter.DeclarationProvider,
	reportStore adapter.ReportStore,
	ui controller.UI,
	analyzer Analyzer,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		provider:    provider,
		reportStore: reportStore,
		ui:          ui,
		analyzer:    analyzer,
	}
}

// Check loads one source file, analyzes it and displays the findings.
// A missing file or a failing declaration provider aborts the run before
// any detector executes.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if args.Path == "" {
		return errors.New("no source file given")
	}

	doc, err := w.fsAdapter.Load(args.Path)
	if err != nil {
		return err
	}

	decls, err := w.declarations(ctx, args.Path)
	if err != nil {
		return err
	}

	findings, err := w.analyzer.Analyze(ctx, doc, decls, args.Only...)
	if err != nil {
		return fmt.Errorf("analysis of %s failed: %w", args.Path, err)
	}

	findings = buildIgnoreIndex(detectors.Scan(doc)).filter(findings)

	report := m.Report{Source: doc.File, Findings: findings}

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	if args.Reports == "" {
		return nil
	}

	saved, err := w.reportStore.SaveReport(args.Reports, report)
	if err != nil {
		return err
	}

	w.ui.DisplayReportSaved(saved)

	return nil
}

func (w *workflow) declarations(ctx context.Context, path m.Path) ([]m.Declaration, error) {
	var all []m.Declaration

	for _, kind := range m.DeclarationKinds {
		decls, err := w.provider.Declarations(ctx, path, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to collect declarations: %w", err)
		}

		all = append(all, decls...)
	}

	return all, nil
}

// View displays every report stored under args.Reports.
func (w *workflow) View(args ViewArgs) error {
	if args.Reports == "" {
		return errors.New("no reports directory given")
	}

	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayReports(reports)
}

// Rules lists the detectors with their severities and limits.
func (w *workflow) Rules() error {
	set := w.analyzer.Detectors()

	rules := make([]m.Rule, 0, len(set))
	for _, detector := range set {
		rules = append(rules, m.Rule{
			Name:        detector.Name(),
			Severity:    detector.Severity(),
			Description: detector.Description(),
		})
	}

	return w.ui.DisplayRules(rules)
}
