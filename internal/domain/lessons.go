package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/kelcheone/notes/internal/model"
)

// ErrLessonNotFound is returned when a selector matches no lesson.
var ErrLessonNotFound = errors.New("lesson not found")

// Lessons returns the lesson catalog in draft order.
func Lessons() []m.Lesson {
	return []m.Lesson{
		stringsLesson(),
		structsLesson(),
		enumsLesson(),
	}
}

// FindLessons selects lessons by ID or name. No selectors selects all lessons.
func FindLessons(selectors []string) ([]m.Lesson, error) {
	all := Lessons()
	if len(selectors) == 0 {
		return all, nil
	}

	selected := make([]m.Lesson, 0, len(selectors))
	seen := make(map[int]bool, len(selectors))

	for _, selector := range selectors {
		lesson, ok := matchLesson(all, selector)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLessonNotFound, selector)
		}

		if seen[lesson.ID] {
			continue
		}

		seen[lesson.ID] = true
		selected = append(selected, lesson)
	}

	return selected, nil
}

func matchLesson(lessons []m.Lesson, selector string) (m.Lesson, bool) {
	selector = strings.ToLower(strings.TrimSpace(selector))
	id, idErr := strconv.Atoi(selector)

	for _, lesson := range lessons {
		if idErr == nil && lesson.ID == id {
			return lesson, true
		}

		if lesson.Name == selector {
			return lesson, true
		}
	}

	return m.Lesson{}, false
}

func stringsLesson() m.Lesson {
	return m.Lesson{
		ID:      1,
		Name:    "strings",
		Summary: "Copying, mutating and scanning strings; boolean expressions",
		Exercises: []m.Exercise{
			{
				Name:  "clone-and-append",
				Topic: m.TopicStrings,
				Run: func(context.Context) ([]string, error) {
					original, clone := CloneAndAppend("hello", ", string")
					return []string{original + " " + clone}, nil
				},
			},
			{
				Name:  "append-in-place",
				Topic: m.TopicReferences,
				Run: func(context.Context) ([]string, error) {
					s := "data"
					AppendInPlace(&s, ", new")

					return []string{s}, nil
				},
			},
			{
				Name:  "owned-string",
				Topic: m.TopicReferences,
				Run: func(context.Context) ([]string, error) {
					return []string{NewOwnedString()}, nil
				},
			},
			{
				Name:  "first-word",
				Topic: m.TopicStrings,
				Run: func(context.Context) ([]string, error) {
					_, clone := CloneAndAppend("hello", ", string")
					return []string{FirstWord(clone)}, nil
				},
			},
			{
				Name:  "boolean-chain",
				Topic: m.TopicBoolean,
				Run: func(context.Context) ([]string, error) {
					return []string{fmt.Sprintf("smt value: %t", BooleanChain(false, true))}, nil
				},
			},
		},
	}
}

func structsLesson() m.Lesson {
	rect := m.Rectangle{Length: 32, Width: 12}

	return m.Lesson{
		ID:      2,
		Name:    "structs",
		Summary: "Struct values, free functions and methods",
		Exercises: []m.Exercise{
			{
				Name:  "area-function",
				Topic: m.TopicStructs,
				Run: func(context.Context) ([]string, error) {
					return []string{fmt.Sprintf("area(%+v) = %d", rect, AreaOf(rect))}, nil
				},
			},
			{
				Name:  "area-method",
				Topic: m.TopicStructs,
				Run: func(context.Context) ([]string, error) {
					return []string{fmt.Sprintf("rect.Area() = %d", rect.Area())}, nil
				},
			},
			{
				Name:  "width-check",
				Topic: m.TopicStructs,
				Run: func(context.Context) ([]string, error) {
					return []string{fmt.Sprintf("rect.HasWidth() = %t", rect.HasWidth())}, nil
				},
			},
		},
	}
}

func enumsLesson() m.Lesson {
	rect := m.Rectangle{Length: 32, Width: 12}

	return m.Lesson{
		ID:      3,
		Name:    "enums",
		Summary: "Enums with data, pattern matching and optional values",
		Exercises: []m.Exercise{
			{
				Name:  "rectangle",
				Topic: m.TopicStructs,
				Run: func(context.Context) ([]string, error) {
					lines := []string{fmt.Sprintf("The area of the rectangle is %d in square pixels", rect.Area())}
					if rect.HasWidth() {
						lines = append(lines, fmt.Sprintf("The rectangle has a nonzero width of %d", rect.Width))
					}

					return lines, nil
				},
			},
			{
				Name:  "coin-value",
				Topic: m.TopicEnums,
				Run: func(ctx context.Context) ([]string, error) {
					coin := m.NewQuarter(m.Alaska)
					cents := ValueInCents(ctx, coin)

					return []string{
						fmt.Sprintf("State: %s", coin.Region),
						fmt.Sprintf("%d cents ($%s)", cents, CentsToDollars(cents).StringFixed(2)),
					}, nil
				},
			},
			{
				Name:  "plus-one",
				Topic: m.TopicOptions,
				Run: func(context.Context) ([]string, error) {
					return []string{
						fmt.Sprintf("five %s", PlusOne(m.Some[int32](5))),
						fmt.Sprintf("None %s", PlusOne(m.None[int32]())),
					}, nil
				},
			},
			{
				Name:  "config-max",
				Topic: m.TopicOptions,
				Run: func(context.Context) ([]string, error) {
					configMax := m.Some(5)
					if limit, ok := configMax.Get(); ok {
						return []string{fmt.Sprintf("The max config is %d", limit)}, nil
					}

					return nil, nil
				},
			},
		},
	}
}
