package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/examprep/internal/repository"
)

var (
	ErrNotFound          = repository.ErrNotFound
	ErrMissingUser       = errors.New("user not identified")
	ErrMissingFaculty    = errors.New("faculty not selected")
	ErrInvalidSetSize    = errors.New("invalid set size, expected 10 or 100")
	ErrEmptySubmission   = errors.New("submission must contain at least one answer")
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrInvalidImport     = errors.New("invalid import payload")
	ErrAlreadyBookmarked = errors.New("question already bookmarked")
)

// InsufficientPoolError means a faculty does not have enough questions for a daily set yet.
type InsufficientPoolError struct {
	Faculty  string
	Required int
	Actual   int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("not enough questions for %s: need %d, have %d", e.Faculty, e.Required, e.Actual)
}
