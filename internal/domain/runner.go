package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "github.com/kelcheone/notes/internal/model"
)

// Runner executes every exercise of a set of lessons.
type Runner interface {
	Run(ctx context.Context, lessons []m.Lesson, threads int) ([]m.ExerciseResult, error)
}

type runner struct {
	Orchestrator
}

// NewRunner creates a Runner that delegates each exercise to orchestrator.
func NewRunner(orchestrator Orchestrator) Runner {
	return &runner{Orchestrator: orchestrator}
}

type job struct {
	lesson   m.Lesson
	exercise m.Exercise
}

// Run executes exercises on at most threads workers. Results keep catalog
// order. If ctx is cancelled the exercises not yet started are skipped and the
// context error is returned with the results.
func (r *runner) Run(ctx context.Context, lessons []m.Lesson, threads int) ([]m.ExerciseResult, error) {
	jobs := flattenJobs(lessons)
	results := make([]m.ExerciseResult, len(jobs))

	if threads <= 0 {
		threads = 1
	}

	slog.Info("Running exercises", "lessons", len(lessons), "exercises", len(jobs), "threads", threads)

	var group errgroup.Group
	group.SetLimit(threads)

	for i, currentJob := range jobs {
		group.Go(func() error {
			results[i] = r.RunExercise(ctx, currentJob.lesson, currentJob.exercise)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	if err := ctx.Err(); err != nil {
		slog.Warn("Run cancelled", "error", err)
		return results, fmt.Errorf("run cancelled: %w", err)
	}

	return results, nil
}

func flattenJobs(lessons []m.Lesson) []job {
	var jobs []job

	for _, lesson := range lessons {
		for _, exercise := range lesson.Exercises {
			jobs = append(jobs, job{lesson: lesson, exercise: exercise})
		}
	}

	return jobs
}
