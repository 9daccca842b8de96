package resolve

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-scaffold/pkg/schema"
)

// ErrDeclined signals the operator declined both deleting and reusing a
// previously downloaded path. It is a clean termination request, not a
// failure; callers are expected to stop without further resolution.
var ErrDeclined = errors.New("resolve: operator declined delete and reuse")

// UndefinedVariableError reports a template default that referenced a
// variable absent from the context. It is fatal to the resolution run and
// carries the offending key plus the whole schema for diagnostics.
type UndefinedVariableError struct {
	Key    string
	Schema *schema.Schema
	Err    error
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("resolve: unable to render variable %q: %v", e.Key, e.Err)
}

func (e *UndefinedVariableError) Unwrap() error {
	return e.Err
}

// InvalidTemplatePathError reports a template selection that resolved to
// an empty or absolute path.
type InvalidTemplatePathError struct {
	Path string
}

func (e *InvalidTemplatePathError) Error() string {
	return fmt.Sprintf("resolve: illegal template path %q", e.Path)
}
