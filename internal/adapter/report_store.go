package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cstyle/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore keeps one YAML file per analyzed source revision.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type fileYAML struct {
	Path string `yaml:"path"`
	Hash string `yaml:"hash"`
}

type summaryYAML struct {
	Errors   int `yaml:"errors"`
	Warnings int `yaml:"warnings"`
}

type reportYAML struct {
	Source   fileYAML    `yaml:"source"`
	Summary  summaryYAML `yaml:"summary"`
	Findings []m.Finding `yaml:"findings"`
}

// SaveReport writes report into dir, named after the source path and hash,
// and returns the written file path. Re-running on an unchanged file
// overwrites the same report.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports dir %s: %w", dir, err)
	}

	doc := reportYAML{
		Source: fileYAML{Path: string(report.Source.Path), Hash: report.Source.Hash},
		Summary: summaryYAML{
			Errors:   report.CountBySeverity(m.SeverityError),
			Warnings: report.CountBySeverity(m.SeverityWarning),
		},
		Findings: report.Findings,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), rs.computeReportHash(report.Source)+reportExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return m.Path(path), nil
}

// LoadReports reads every report in dir, ordered by source path.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reports dir %s does not exist", dir)
		}

		return nil, fmt.Errorf("failed to read reports dir %s: %w", dir, err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		report, err := rs.loadReport(path)
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Source.Path < reports[j].Source.Path
	})

	return reports, nil
}

func (rs *LocalReportStore) loadReport(path string) (m.Report, error) {
	// #nosec G304 - path is built from the reports dir listing
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var doc reportYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return m.Report{
		Source:   m.File{Path: m.Path(doc.Source.Path), Hash: doc.Source.Hash},
		Findings: doc.Findings,
	}, nil
}

// computeReportHash returns 16 hex chars identifying a source revision.
func (rs *LocalReportStore) computeReportHash(source m.File) string {
	sum := sha256.Sum256([]byte(string(source.Path) + "\x00" + source.Hash))

	return hex.EncodeToString(sum[:8])
}
