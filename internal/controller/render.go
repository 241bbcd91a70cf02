package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/kelcheone/notes/internal/model"
)

func renderLessonTable(lessons []m.Lesson) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Lesson", "Exercises", "Topics"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	totalExercises := 0

	for _, lesson := range lessons {
		table.Append([]string{
			fmt.Sprintf("%d", lesson.ID),
			lesson.Name,
			fmt.Sprintf("%d", len(lesson.Exercises)),
			joinTopics(lesson.Topics()),
		})

		totalExercises += len(lesson.Exercises)
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total Lessons %d", len(lessons)),
		fmt.Sprintf("%d", totalExercises),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func joinTopics(topics []m.Topic) string {
	names := make([]string, 0, len(topics))
	for _, topic := range topics {
		names = append(names, string(topic))
	}

	return strings.Join(names, ", ")
}

// resultLines renders results grouped by lesson. Output lines of an exercise
// are indented under its heading.
func resultLines(results []m.ExerciseResult, mark func(m.Status) string) []string {
	var lines []string

	lesson := ""

	for _, result := range results {
		if result.Lesson != lesson {
			if lesson != "" {
				lines = append(lines, "")
			}

			lesson = result.Lesson
			lines = append(lines, fmt.Sprintf("[%s]", lesson))
		}

		lines = append(lines, fmt.Sprintf("%s %s (%s)", mark(result.Status), result.Exercise, result.Topic))

		for _, line := range result.Lines {
			lines = append(lines, "    "+line)
		}

		if result.Error != "" {
			lines = append(lines, "    error: "+result.Error)
		}
	}

	return lines
}

func plainMark(status m.Status) string {
	switch status {
	case m.Passed:
		return "✓"
	case m.Failed:
		return "✗"
	case m.Skipped:
		return "-"
	default:
		return "?"
	}
}

func summaryLine(results []m.ExerciseResult) string {
	report := m.RunReport{Results: results}

	return fmt.Sprintf("Total: %d | Passed: %d | Failed: %d | Skipped: %d",
		len(results), report.Count(m.Passed), report.Count(m.Failed), report.Count(m.Skipped))
}
