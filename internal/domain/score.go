package domain

import m "github.com/kelcheone/notes/internal/model"

// passRate returns the share of run exercises that passed. Skipped exercises
// are excluded from the denominator. An empty run scores 1.
func passRate(results []m.ExerciseResult) float64 {
	passed := 0
	total := 0

	for _, result := range results {
		switch result.Status {
		case m.Passed:
			passed++
			total++
		case m.Failed:
			total++
		case m.Skipped:
		}
	}

	if total == 0 {
		return 1.0
	}

	return float64(passed) / float64(total)
}
