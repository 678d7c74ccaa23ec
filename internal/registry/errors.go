package registry

import "fmt"

// ComponentError is the failure a component's evaluate function reports.
// It never aborts the whole run by itself; the evaluator rewraps it
// naming the offending node.
type ComponentError struct {
	// Message is the user-visible failure text, empty for stubs.
	Message string

	// NotImplemented names the component when the failure is a stub.
	NotImplemented string
}

func (e *ComponentError) Error() string {
	if e.NotImplemented != "" {
		return fmt.Sprintf("component %q is not yet implemented", e.NotImplemented)
	}
	return e.Message
}

// Errorf builds a user-visible component failure.
func Errorf(format string, args ...any) *ComponentError {
	return &ComponentError{Message: fmt.Sprintf(format, args...)}
}

// NotImplemented builds the stub failure for a component without an
// evaluation body yet.
func NotImplemented(name string) *ComponentError {
	return &ComponentError{NotImplemented: name}
}
