package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kelcheone/notes/internal/adapter"
	"github.com/kelcheone/notes/internal/controller"
	m "github.com/kelcheone/notes/internal/model"
)

var (
	// ErrExercisesFailed is returned when at least one exercise of a run failed.
	ErrExercisesFailed = errors.New("exercises failed")
	// ErrNoReports is returned when the reports directory holds no reports.
	ErrNoReports = errors.New("no reports found")
)

// RunArgs contains the arguments for running lessons.
type RunArgs struct {
	Lessons []string
	Threads int
	Reports m.Path
	Save    bool
}

// ListArgs contains the arguments for listing lessons.
type ListArgs struct {
	Lessons []string
}

// ViewArgs contains the arguments for viewing a stored report.
type ViewArgs struct {
	Reports m.Path
	ID      string
}

// Workflow coordinates the lesson catalog, the runner, the report store and
// the UI for each command.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Runner
	now   func() time.Time
	newID func() string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	runner Runner,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		Runner:      runner,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	lessons, err := FindLessons(args.Lessons)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayRunInfo(ctx, len(lessons), len(flattenJobs(lessons)), args.Threads)

	report := m.RunReport{
		ID:        w.newID(),
		StartedAt: w.now(),
	}

	results, runErr := w.Runner.Run(ctx, lessons, args.Threads)
	report.Results = results
	report.FinishedAt = w.now()

	// An interrupted run still reports and saves its skipped exercises.
	outCtx := context.WithoutCancel(ctx)

	if err := w.DisplayResults(outCtx, results); err != nil {
		slog.Error("Failed to display results", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayScore(outCtx, passRate(results))

	if args.Save {
		path, err := w.SaveReport(outCtx, args.Reports, report)
		if err != nil {
			slog.Error("Failed to save report", "reports", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}

		w.DisplaySaved(outCtx, path)
	}

	if runErr != nil {
		return runErr
	}

	if failed := report.Count(m.Failed); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrExercisesFailed, failed, len(results))
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	lessons, err := FindLessons(args.Lessons)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayLessons(ctx, lessons); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.findReport(ctx, args)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) findReport(ctx context.Context, args ViewArgs) (m.RunReport, error) {
	if args.ID != "" {
		report, err := w.LoadReport(ctx, args.Reports, args.ID)
		if err != nil {
			return m.RunReport{}, fmt.Errorf("load report %s: %w", args.ID, err)
		}

		return report, nil
	}

	reports, err := w.ListReports(ctx, args.Reports)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("list reports: %w", err)
	}

	if len(reports) == 0 {
		return m.RunReport{}, fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
	}

	return reports[len(reports)-1], nil
}
