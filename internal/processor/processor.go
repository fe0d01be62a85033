package processor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks data rejected by a processor's Validate. Callers can
// test for it with errors.Is regardless of which variant produced it.
var ErrInvalidInput = errors.New("invalid input for processor")

// Processor is the shared capability every data processor implements.
// Process must return an explicit error for data that does not belong to the
// processor's kind instead of producing a silently wrong result.
type Processor interface {
	Kind() string
	Validate(data any) error
	Process(data any) (string, error)
}

// FormatOutput wraps a raw result for display
func FormatOutput(result string) string {
	return fmt.Sprintf("%q", result)
}

// ForKind returns the processor registered for kind
func ForKind(kind string) (Processor, error) {
	switch kind {
	case "numeric":
		return &Numeric{}, nil
	case "text":
		return &Text{}, nil
	case "log":
		return &Log{}, nil
	default:
		return nil, fmt.Errorf("unknown processor kind: %s", kind)
	}
}

// All returns one instance of every processor variant, for polymorphic demos
// and tests that drive the shared interface.
func All() []Processor {
	return []Processor{&Numeric{}, &Text{}, &Log{}}
}
