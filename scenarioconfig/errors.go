package scenarioconfig

import "fmt"

// CannotOpenConfigError is returned when the initial configuration
// file (or a parent reached during a chain walk whose existence check
// already passed) cannot be opened.
type CannotOpenConfigError struct {
	Path string
	Err  error
}

func (e *CannotOpenConfigError) Error() string {
	return fmt.Sprintf("cannot open config %q: %v", e.Path, e.Err)
}

func (e *CannotOpenConfigError) Unwrap() error { return e.Err }

// CannotReadConfigError is returned when a configuration file's
// contents cannot be parsed.
type CannotReadConfigError struct {
	Path string
	Err  error
}

func (e *CannotReadConfigError) Error() string {
	return fmt.Sprintf("cannot read config %q: %v", e.Path, e.Err)
}

func (e *CannotReadConfigError) Unwrap() error { return e.Err }

// CircularDependencyError is returned when the parent-chain walk
// revisits an import path it has already seen. Detection keys on the
// literal import-path string, not a canonicalized path — two different
// spellings of the same file are not detected, matching the original
// implementation's behavior (see DESIGN.md).
type CircularDependencyError struct {
	Path string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected: %q was already visited", e.Path)
}

// ParentConfigNotFoundError is returned when a resolved parent path
// does not exist on disk, distinct from CannotOpenConfigError (which
// covers the initial path, or a genuine I/O failure on a path that did
// pass the existence check).
type ParentConfigNotFoundError struct {
	Path string
}

func (e *ParentConfigNotFoundError) Error() string {
	return fmt.Sprintf("parent config not found: %q", e.Path)
}

// MissingSectionError is returned when the fully merged document lacks
// one of the mandatory sections: credentials, server, execute, tasks.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing required section: %s", e.Section)
}
