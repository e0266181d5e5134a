package skill

import "fmt"

// ValidationError reports a rejected field value, such as a level outside
// the 0-100 range. The mutation that produced it leaves prior state unchanged.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports a missing category or skill on an operation that
// expected it to exist.
type NotFoundError struct {
	Kind string // "category" or "skill"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// PersistenceError reports an I/O or decode failure while saving or loading
// the data file. It wraps the underlying error.
type PersistenceError struct {
	Op   string // "save" or "load"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func validateLevel(level int) error {
	if level < 0 || level > 100 {
		return &ValidationError{Field: "level", Value: level, Reason: "must be between 0 and 100"}
	}
	return nil
}
