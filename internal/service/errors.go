package service

import (
	"fmt"
	"strings"
)

// ValidationError is a client-fault error carrying every violated field.
// Handlers surface it as a 400 with the full list; nothing is written to
// storage before validation passes.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// violations collects field-level failures before they are wrapped into a
// ValidationError.
type violations []string

func (v *violations) addf(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}
