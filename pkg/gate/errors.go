package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBuildIncomplete indicates Build was called on a builder with the
// classifier and/or a child unset. Recoverable: set the missing slots and
// call Build again.
var ErrBuildIncomplete = errors.New("gate: build incomplete")

// BuildError reports which builder slots were unset at Build time. It wraps
// ErrBuildIncomplete so callers can test with errors.Is.
type BuildError struct {
	Missing []string // unset slots, in classifier, true child, false child order
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("gate: build incomplete: missing %s", strings.Join(e.Missing, ", "))
}

func (e *BuildError) Unwrap() error {
	return ErrBuildIncomplete
}
