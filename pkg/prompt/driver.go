// Package prompt supplies the interactive capability set the resolvers
// call through: free text, masked password, yes/no, enumerated choice, and
// JSON-object questions. The production driver is backed by survey; tests
// substitute scripted drivers.
package prompt

import "context"

// InputConfig configures a free-text or password prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt. The operator may answer with
// any of the boolean token spellings (see ParseYesNo); anything else is
// re-asked.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a choice-from-list prompt over display labels.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// JSONConfig configures a structured-input prompt. An empty answer keeps
// Default; otherwise the answer must parse as a JSON object.
type JSONConfig struct {
	Message string
	Default map[string]any
	Help    string
}

// Driver abstracts the terminal prompt implementation so resolution logic
// can be tested without a real terminal and callers can swap
// implementations. Every method blocks until the operator answers;
// malformed input is retried internally and never surfaces to the caller.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	JSONObject(ctx context.Context, cfg JSONConfig) (map[string]any, error)
}
