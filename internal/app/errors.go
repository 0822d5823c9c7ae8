package app

import (
	"errors"
	"fmt"
)

// Stage is a startup step whose failure is fatal. Its value is the process
// exit status.
type Stage int

const (
	StageInit   Stage = 1
	StageWindow Stage = 2
	StageAssets Stage = 3
	StageConfig Stage = 4
	StageServer Stage = 5
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "subsystem init"
	case StageWindow:
		return "window"
	case StageAssets:
		return "assets"
	case StageConfig:
		return "config"
	case StageServer:
		return "remote view server"
	default:
		return fmt.Sprintf("stage %d", int(s))
	}
}

// StageError is a fatal startup failure.
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

// Fail wraps err as a failure of stage s.
func Fail(s Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: s, Err: err}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StageError
	if errors.As(err, &se) {
		return int(se.Stage)
	}
	return 1
}
