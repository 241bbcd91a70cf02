package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	m "github.com/kelcheone/notes/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayLessons prints the lesson catalog as a table.
func (s *SimpleUI) DisplayLessons(ctx context.Context, lessons []m.Lesson) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderLessonTable(lessons))

	return nil
}

// DisplayRunInfo shows what is about to run.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, lessons int, exercises int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d exercise(s) from %d lesson(s) with %d worker(s)\n", exercises, lessons, max(threads, 1))
}

// DisplayResults prints every exercise and its output.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.ExerciseResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range resultLines(results, plainMark) {
		if err := s.outPrintf("%s\n", line); err != nil {
			return err
		}
	}

	return s.outPrintf("\n%s\n", summaryLine(results))
}

// DisplayScore prints the share of passed exercises.
func (s *SimpleUI) DisplayScore(ctx context.Context, score float64) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Pass rate: %.2f%%\n", score*100)
}

// DisplaySaved shows where the report was written.
func (s *SimpleUI) DisplaySaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report saved to %s\n", path)
}

// DisplayReport prints a stored report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.outPrintf("%s\n", reportHeader(report)); err != nil {
		return err
	}

	if err := s.outPrintf("%s\n\n", strings.Repeat("=", 40)); err != nil {
		return err
	}

	return s.DisplayResults(ctx, report.Results)
}

func reportHeader(report m.RunReport) string {
	return fmt.Sprintf("Report %s (%s, %s)",
		report.ID,
		report.StartedAt.Format(time.RFC3339),
		report.FinishedAt.Sub(report.StartedAt).Round(time.Microsecond))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
