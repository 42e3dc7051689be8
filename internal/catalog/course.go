// Package catalog contains the course catalog entities and their
// overview formatting.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteWorkshop is returned when a workshop is missing a field.
	ErrIncompleteWorkshop = errors.New("workshop details are incomplete")

	// ErrIncompleteSeminar is returned when a seminar is missing a field.
	ErrIncompleteSeminar = errors.New("seminar details are incomplete")
)

// Course is implemented by every course kind that can describe itself.
type Course interface {
	// Overview returns a one-line human-readable summary of the course.
	Overview() (string, error)
}

// Workshop is an instructor-led course with a duration in hours.
type Workshop struct {
	Title      string
	Instructor string
	Duration   string // in hours
}

// Overview formats the workshop summary, or fails if any detail is missing.
func (w Workshop) Overview() (string, error) {
	if w.Title == "" || w.Instructor == "" || w.Duration == "" {
		return "", ErrIncompleteWorkshop
	}
	return fmt.Sprintf("Workshop: %s, Instructor: %s, Duration: %s hours",
		w.Title, w.Instructor, w.Duration), nil
}

// Seminar is a single-speaker course held at a fixed location.
type Seminar struct {
	Title    string
	Speaker  string
	Location string
}

// Overview formats the seminar summary, or fails if any detail is missing.
func (s Seminar) Overview() (string, error) {
	if s.Title == "" || s.Speaker == "" || s.Location == "" {
		return "", ErrIncompleteSeminar
	}
	return fmt.Sprintf("Seminar: %s, Speaker: %s, Location: %s",
		s.Title, s.Speaker, s.Location), nil
}

// Compile-time interface checks
var (
	_ Course = Workshop{}
	_ Course = Seminar{}
)
