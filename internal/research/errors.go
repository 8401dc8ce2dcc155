package research

import (
	"errors"
	"fmt"
)

// Stage identifies a pipeline stage. Failures carry the stage they happened
// in so the transport layer can tell user errors from upstream ones.
type Stage string

const (
	StageValidate Stage = "validate"
	StageRetrieve Stage = "retrieve"
	StageGenerate Stage = "generate"
)

// Sentinel causes wrapped into StageError.
var (
	ErrEmptyIndustry = errors.New("industry name is required")
	ErrNotAnIndustry = errors.New("not a recognized industry or sector")
	ErrNoPages       = errors.New("no matching pages found")
	ErrEmptyReport   = errors.New("model returned an empty report")
)

// StageError tags an error with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with the given stage tag.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the stage an error failed in, or "" if the error does not
// carry one.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
