package ghxml

import "fmt"

// UnknownFormatError reports a document whose root element is neither of
// the supported shapes.
type UnknownFormatError struct {
	Root string
}

func (e *UnknownFormatError) Error() string {
	if e.Root == "" {
		return "unknown document format: no root element"
	}
	return fmt.Sprintf("unknown document format: root element %q", e.Root)
}

// MalformedError wraps a low-level XML syntax failure.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed xml: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// NumberParseError reports text that should have held a number.
type NumberParseError struct {
	Text    string
	Context string
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as a number", e.Context, e.Text)
}

// IndexParseError reports a bad node id or pin reference.
type IndexParseError struct {
	Text    string
	Context string
}

func (e *IndexParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as an index", e.Context, e.Text)
}

// GraphError reports a structural failure while assembling the graph, such
// as a duplicate node id, a dangling source reference or a missing
// mandatory chunk.
type GraphError struct {
	Message string
	Err     error
}

func (e *GraphError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GraphError) Unwrap() error { return e.Err }
