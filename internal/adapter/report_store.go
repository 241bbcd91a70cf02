// Package adapter contains infrastructure adapters for the notes CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/kelcheone/notes/internal/model"
)

const (
	reportExt      = ".yaml"
	reportDirPerm  = 0o750
	reportFilePerm = 0o600
)

// ErrInvalidReportID is returned for report IDs that are not a plain file name.
var ErrInvalidReportID = errors.New("invalid report id")

// ReportStore persists run reports in a reports directory.
type ReportStore interface {
	// SaveReport writes report into dir and returns the file it was written to.
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error)
	// LoadReport reads the report with the given ID from dir.
	LoadReport(ctx context.Context, dir m.Path, id string) (m.RunReport, error)
	// ListReports returns every report in dir ordered by start time.
	ListReports(ctx context.Context, dir m.Path) ([]m.RunReport, error)
}

// YAMLReportStore stores each report as <dir>/<id>.yaml.
type YAMLReportStore struct{}

// NewReportStore creates a YAML backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport implements ReportStore.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.TrimSpace(report.ID) == "" {
		return "", fmt.Errorf("report has no id")
	}

	path, err := reportPath(dir, report.ID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), reportDirPerm); err != nil {
		slog.Error("failed to create reports directory", "path", dir, "error", err)
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", report.ID, err)
	}

	if err := os.WriteFile(string(path), data, reportFilePerm); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "results", len(report.Results))

	return path, nil
}

// LoadReport implements ReportStore.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path, id string) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	path, err := reportPath(dir, id)
	if err != nil {
		return m.RunReport{}, err
	}

	return readReport(path)
}

// ListReports implements ReportStore. A missing directory holds no reports.
func (s *YAMLReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	reports := make([]m.RunReport, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExt {
			continue
		}

		report, err := readReport(m.Path(filepath.Join(string(dir), entry.Name())))
		if err != nil {
			slog.Warn("skipping unreadable report", "file", entry.Name(), "error", err)
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}

func reportPath(dir m.Path, id string) (m.Path, error) {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportID, id)
	}

	return m.Path(filepath.Join(string(dir), id+reportExt)), nil
}

func readReport(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}
