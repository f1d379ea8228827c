package scenario

import (
	"fmt"
	"strings"
)

// VariablesError is returned by variable composition and resolution.
type VariablesError struct {
	Op  string
	Err error
}

func (e *VariablesError) Error() string {
	return fmt.Sprintf("variables: %s: %v", e.Op, e.Err)
}

func (e *VariablesError) Unwrap() error {
	return e.Err
}

// ValidationFailedError reports a mismatch between the required
// variables declared in configuration and the values supplied at
// construction time.
type ValidationFailedError struct {
	Undeclared []string
	Missing    []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf(
		"required variable validation failed: undeclared=[%s] missing=[%s]",
		strings.Join(e.Undeclared, ", "), strings.Join(e.Missing, ", "),
	)
}

// UnresolvedValuesError is returned when the fixed-point resolution
// loop exhausts its iteration cap while placeholders remain.
type UnresolvedValuesError struct {
	Keys []string
}

func (e *UnresolvedValuesError) Error() string {
	return fmt.Sprintf("unresolved placeholder values for keys: %s", strings.Join(e.Keys, ", "))
}

// UnresolvedValueError is returned by the point-substitution primitive
// when the result still contains a placeholder after one pass.
type UnresolvedValueError struct {
	Result string
}

func (e *UnresolvedValueError) Error() string {
	return fmt.Sprintf("unresolved placeholder in value: %q", e.Result)
}

// PlaceholderResolutionError wraps an UnresolvedValueError with the
// field it occurred in (command, source path, destination path, ...).
type PlaceholderResolutionError struct {
	Field string
	Err   error
}

func (e *PlaceholderResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s placeholders: %v", e.Field, e.Err)
}

func (e *PlaceholderResolutionError) Unwrap() error {
	return e.Err
}

// Task binding errors (C3/C4).

type CannotCreateTaskFromConfigError struct {
	TaskID string
}

func (e *CannotCreateTaskFromConfigError) Error() string {
	return fmt.Sprintf("cannot create task from config: unknown task id %q", e.TaskID)
}

type InvalidOnFailStepError struct {
	TaskID string
}

func (e *InvalidOnFailStepError) Error() string {
	return fmt.Sprintf("invalid on-fail step: unknown task id %q", e.TaskID)
}

// Session errors (C5).

type SessionError struct {
	Op  string
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session: %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// RemoteSudoError wraps every failure mode of the RemoteSudo executor.
type RemoteSudoError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteSudoError) Error() string {
	if e.Op == "RemoteCommandFailedWithStatusCode" {
		return fmt.Sprintf("remote command failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("remote sudo: %s: %v", e.Op, e.Err)
}

func (e *RemoteSudoError) Unwrap() error {
	return e.Err
}

// SftpCopyError wraps every failure mode of the SftpCopy executor.
type SftpCopyError struct {
	Op  string
	Err error
}

func (e *SftpCopyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sftp copy: %s", e.Op)
	}
	return fmt.Sprintf("sftp copy: %s: %v", e.Op, e.Err)
}

func (e *SftpCopyError) Unwrap() error {
	return e.Err
}

// StepError wraps a failure binding a step to its task and on-fail chain.
type StepError struct {
	Op  string
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step: %s: %v", e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// OnFailError wraps a failure occurring while running a recovery chain.
type OnFailError struct {
	Index int
	Err   error
}

func (e *OnFailError) Error() string {
	return fmt.Sprintf("on-fail step %d failed: %v", e.Index, e.Err)
}

func (e *OnFailError) Unwrap() error {
	return e.Err
}

// StepsError wraps a task execution failure together with the step's
// configured error message. OnFailErr is set when the step also had a
// recovery chain that itself failed while attempting to recover: the
// original task error (Err) is still what propagates, per §4.5 — the
// recovery-chain failure is carried alongside it, not in place of it.
type StepsError struct {
	ErrorMessage string
	Err          error
	OnFailErr    error
}

func (e *StepsError) Error() string {
	base := e.Err.Error()
	if e.ErrorMessage != "" {
		base = fmt.Sprintf("%s: %s", e.ErrorMessage, base)
	}
	if e.OnFailErr != nil {
		return fmt.Sprintf("%s (recovery attempted: %v)", base, e.OnFailErr)
	}
	return base
}

func (e *StepsError) Unwrap() error {
	return e.Err
}

// ScenarioError is the top-level wrapper returned by Scenario.Execute.
type ScenarioError struct {
	Err error
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("scenario execution failed: %v", e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}
