package model

import "time"

// Status represents the outcome of running an exercise.
type Status string

const (
	// Passed indicates the exercise ran to completion.
	Passed Status = "passed"
	// Failed indicates the exercise returned an error.
	Failed Status = "failed"
	// Skipped indicates the exercise was not run because the run was cancelled.
	Skipped Status = "skipped"
)

// ExerciseResult holds the output of a single exercise.
type ExerciseResult struct {
	Lesson   string        `yaml:"lesson"`
	Exercise string        `yaml:"exercise"`
	Topic    Topic         `yaml:"topic"`
	Lines    []string      `yaml:"lines,omitempty"`
	Status   Status        `yaml:"status"`
	Error    string        `yaml:"error,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// RunReport is the persisted record of one run.
type RunReport struct {
	ID         string           `yaml:"id"`
	StartedAt  time.Time        `yaml:"started_at"`
	FinishedAt time.Time        `yaml:"finished_at"`
	Results    []ExerciseResult `yaml:"results"`
}

// Count returns the number of results with the given status.
func (r RunReport) Count(status Status) int {
	count := 0

	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}

	return count
}
