// Package scaffold resolves declarative project-configuration schemas into
// concrete values, asking the operator a numbered sequence of questions or
// falling back to schema defaults under no-input mode. The root package
// re-exports the common flow; the pieces live under pkg/schema,
// pkg/template, pkg/prompt, and pkg/resolve.
package scaffold

import (
	"context"

	"github.com/goliatone/go-scaffold/pkg/prompt"
	"github.com/goliatone/go-scaffold/pkg/resolve"
	"github.com/goliatone/go-scaffold/pkg/schema"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// Schema is the ordered variable declaration set consumed by resolution.
type Schema = schema.Schema

// Context is the ordered mapping of resolved values.
type Context = resolve.Context

// Option configures the resolver.
type Option = resolve.Option

// WithDriver overrides the prompt driver used for interactive questions.
func WithDriver(driver prompt.Driver) Option {
	return resolve.WithDriver(driver)
}

// WithRenderer overrides the template renderer applied to defaults.
func WithRenderer(renderer template.Renderer) Option {
	return resolve.WithRenderer(renderer)
}

// WithTheme overrides the presentation styles on synthesized questions.
func WithTheme(theme prompt.Theme) Option {
	return resolve.WithTheme(theme)
}

// LoadSchemaFile reads and parses a schema document from disk.
func LoadSchemaFile(path string) (*Schema, error) {
	return schema.LoadFile(path)
}

// Resolve walks the schema and returns the resolved context. It is the
// simplest entry point for callers that just want answers.
func Resolve(ctx context.Context, s *Schema, noInput bool, options ...Option) (*Context, error) {
	return resolve.New(options...).Resolve(ctx, s, noInput)
}

// ChooseTemplate resolves the nested-template directory declared by the
// schema, returning its absolute path under repoDir.
func ChooseTemplate(ctx context.Context, s *Schema, repoDir string, noInput bool, options ...Option) (string, error) {
	return resolve.New(options...).ChooseTemplate(ctx, s, repoDir, noInput)
}

// ConfirmAndDelete asks whether a previously downloaded path may be
// deleted and re-downloaded, deleting it on consent. See
// resolve.Resolver.ConfirmAndDelete for the full flow.
func ConfirmAndDelete(ctx context.Context, path string, noInput bool, options ...Option) (bool, error) {
	return resolve.New(options...).ConfirmAndDelete(ctx, path, noInput)
}
