// Package model defines the data structures for lessons and their reports.
package model

import "context"

// Topic represents the language feature an exercise demonstrates.
type Topic string

const (
	// TopicStrings covers copying and appending to strings.
	TopicStrings Topic = "strings"
	// TopicReferences covers mutation through a pointer.
	TopicReferences Topic = "references"
	// TopicBoolean covers boolean expressions.
	TopicBoolean Topic = "boolean"
	// TopicStructs covers struct values and methods.
	TopicStructs Topic = "structs"
	// TopicEnums covers closed enumerations carrying data.
	TopicEnums Topic = "enums"
	// TopicOptions covers optional values.
	TopicOptions Topic = "options"
)

// ExerciseFunc computes an exercise and returns the lines it prints.
type ExerciseFunc func(ctx context.Context) ([]string, error)

// Exercise is a single runnable step of a lesson.
type Exercise struct {
	Name  string
	Topic Topic
	Run   ExerciseFunc
}

// Lesson groups exercises written as one draft of the learning file.
type Lesson struct {
	ID        int
	Name      string
	Summary   string
	Exercises []Exercise
}

// Topics returns the distinct topics of the lesson in exercise order.
func (l Lesson) Topics() []Topic {
	seen := make(map[Topic]bool, len(l.Exercises))
	topics := make([]Topic, 0, len(l.Exercises))

	for _, exercise := range l.Exercises {
		if seen[exercise.Topic] {
			continue
		}

		seen[exercise.Topic] = true
		topics = append(topics, exercise.Topic)
	}

	return topics
}
