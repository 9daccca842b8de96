package template

import "fmt"

// UndefinedError reports a template expression that references a variable
// absent from the bound context. It carries the offending name and the
// template text so callers can attach schema-level diagnostics.
type UndefinedError struct {
	Name     string
	Template string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("template: %q is undefined in %q", e.Name, e.Template)
}
