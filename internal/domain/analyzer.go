package domain

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cstyle/internal/domain/detectors"
	m "github.com/mouse-blink/cstyle/internal/model"
)

// Analyzer runs the detector set over one source document.
type Analyzer interface {
	// Analyze returns the findings of every selected detector, concatenated
	// in reporting order. only restricts the run to the named detectors.
	Analyze(ctx context.Context, doc m.SourceDocument, decls []m.Declaration, only ...string) ([]m.Finding, error)
	// Detectors returns the full detector set in reporting order.
	Detectors() []detectors.Detector
}

type analyzer struct {
	detectors []detectors.Detector
	jobs      int
}

// NewAnalyzer builds an Analyzer over the stock detector set. jobs bounds how
// many detectors run at once; zero or less means one per CPU.
func NewAnalyzer(th detectors.Thresholds, jobs int) Analyzer {
	return NewAnalyzerWith(detectors.All(th), jobs)
}

// NewAnalyzerWith builds an Analyzer over a custom detector set.
func NewAnalyzerWith(set []detectors.Detector, jobs int) Analyzer {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	return &analyzer{detectors: set, jobs: jobs}
}

func (a *analyzer) Detectors() []detectors.Detector {
	return a.detectors
}

func (a *analyzer) Analyze(ctx context.Context, doc m.SourceDocument, decls []m.Declaration, only ...string) ([]m.Finding, error) {
	selected, err := detectors.Select(a.detectors, only)
	if err != nil {
		return nil, err
	}

	if len(selected) == 0 {
		return nil, nil
	}

	// Each detector writes only its own slot, so no locking is needed.
	results := make([][]m.Finding, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(a.jobs, len(selected)))

	for i, detector := range selected {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = detector.Detect(doc, decls)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []m.Finding
	for _, result := range results {
		findings = append(findings, result...)
	}

	return findings, nil
}
