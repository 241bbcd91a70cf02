package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	m "github.com/kelcheone/notes/internal/model"
)

// Orchestrator runs a single exercise and turns its outcome into a result.
type Orchestrator interface {
	RunExercise(ctx context.Context, lesson m.Lesson, exercise m.Exercise) m.ExerciseResult
}

type orchestrator struct {
	now func() time.Time
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator() Orchestrator {
	return &orchestrator{now: time.Now}
}

func (o *orchestrator) RunExercise(ctx context.Context, lesson m.Lesson, exercise m.Exercise) m.ExerciseResult {
	if err := ctx.Err(); err != nil {
		return o.resultForStatus(lesson, exercise, m.Skipped, nil, 0, nil)
	}

	if exercise.Run == nil {
		return o.resultForStatus(lesson, exercise, m.Failed, nil, 0,
			fmt.Errorf("exercise %q has no body", exercise.Name))
	}

	start := o.now()
	lines, err := o.invoke(ctx, exercise)
	elapsed := o.now().Sub(start)

	if err != nil {
		slog.Error("Exercise failed", "lesson", lesson.Name, "exercise", exercise.Name, "error", err)
		return o.resultForStatus(lesson, exercise, m.Failed, lines, elapsed, err)
	}

	slog.Debug("Exercise completed", "lesson", lesson.Name, "exercise", exercise.Name, "lines", len(lines), "elapsed", elapsed)

	return o.resultForStatus(lesson, exercise, m.Passed, lines, elapsed, nil)
}

// invoke converts a panicking exercise into an error.
func (o *orchestrator) invoke(ctx context.Context, exercise m.Exercise) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("exercise %q panicked: %v", exercise.Name, r)
		}
	}()

	return exercise.Run(ctx)
}

func (o *orchestrator) resultForStatus(
	lesson m.Lesson,
	exercise m.Exercise,
	status m.Status,
	lines []string,
	elapsed time.Duration,
	err error,
) m.ExerciseResult {
	result := m.ExerciseResult{
		Lesson:   lesson.Name,
		Exercise: exercise.Name,
		Topic:    exercise.Topic,
		Lines:    lines,
		Status:   status,
		Duration: elapsed,
	}

	if err != nil {
		result.Error = err.Error()
	}

	return result
}
