// Package resolve turns a declarative configuration schema into concrete
// values, either by asking the operator a numbered sequence of questions
// or by materializing schema defaults under no-input mode. Resolution is
// strictly sequential: context keys are produced in schema declaration
// order (dict-shaped keys deferred to a second pass), and later defaults
// may reference earlier answers through template expressions.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/goliatone/go-scaffold/pkg/prompt"
	"github.com/goliatone/go-scaffold/pkg/schema"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// ChoiceKey is the key the selected option is stored under for
// choice-bearing variables.
const ChoiceKey = "choice"

// Resolver walks a schema and accumulates resolved values. Construct with
// New; the zero value is not usable.
type Resolver struct {
	driver   prompt.Driver
	renderer template.Renderer
	theme    prompt.Theme
}

// Option configures the resolver.
type Option func(*Resolver)

// WithDriver overrides the prompt driver used for interactive questions.
func WithDriver(driver prompt.Driver) Option {
	return func(r *Resolver) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithRenderer overrides the template renderer applied to defaults.
func WithRenderer(renderer template.Renderer) Option {
	return func(r *Resolver) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// WithTheme overrides the presentation styles on synthesized questions.
func WithTheme(theme prompt.Theme) Option {
	return func(r *Resolver) {
		r.theme = theme
	}
}

// New constructs a Resolver with production defaults: a survey-backed
// prompt driver and a pongo2 template engine.
func New(options ...Option) *Resolver {
	r := &Resolver{
		driver:   prompt.NewSurveyDriver(),
		renderer: template.New(),
		theme:    prompt.DefaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve walks the schema in declaration order and returns the resolved
// context. Under noInput it never blocks: every value comes from the
// schema with only template substitution applied.
//
// Resolution is two passes. Pass 1 handles every scalar-shaped key
// (private, derived, choice groups, lists, booleans, scalars) in order.
// Pass 2 handles the dict-shaped keys deferred from pass 1, again in
// declaration order, so their defaults observe the complete pass-1
// context.
func (r *Resolver) Resolve(ctx context.Context, s *schema.Schema, noInput bool) (*Context, error) {
	if s == nil {
		return nil, errors.New("resolve: schema is required")
	}

	resolved := NewContext()
	visible := s.VisibleCount()
	count := 0

	for _, entry := range s.Entries {
		key, raw := entry.Name, entry.Raw

		if schema.IsPrivate(key) {
			resolved.Set(key, raw.Interface())
			continue
		}
		if schema.IsDerived(key) {
			val, err := renderVariable(r.renderer, raw, resolved)
			if err != nil {
				return nil, r.wrapRenderErr(key, s, err)
			}
			resolved.Set(key, val)
			continue
		}

		if raw.Kind == schema.KindDict && raw.Dict.IsChoiceGroup() {
			count++
			if err := r.resolveChoiceGroup(ctx, s, resolved, key, raw.Dict, noInput, r.theme.Progress(count, visible)); err != nil {
				return nil, err
			}
			continue
		}

		switch raw.Kind {
		case schema.KindList:
			count++
			val, err := r.promptChoice(ctx, s, resolved, key, raw.List, noInput, r.theme.Progress(count, visible))
			if err != nil {
				return nil, err
			}
			resolved.Set(key, map[string]any{ChoiceKey: val})
		case schema.KindBool:
			count++
			if noInput {
				resolved.Set(key, raw.Bool)
				continue
			}
			val, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{
				Message: r.theme.Progress(count, visible) + r.question(s, key),
				Default: raw.Bool,
			})
			if err != nil {
				return nil, err
			}
			resolved.Set(key, val)
		case schema.KindDict:
			// Deferred to pass 2 so the default subtree can reference
			// the complete scalar context.
			continue
		default:
			count++
			val, err := renderVariable(r.renderer, raw, resolved)
			if err != nil {
				return nil, r.wrapRenderErr(key, s, err)
			}
			if !noInput {
				// Null defaults offer an empty answer, not "<nil>".
				def := ""
				if val != nil {
					def = fmt.Sprint(val)
				}
				answer, err := r.driver.Input(ctx, prompt.InputConfig{
					Message: r.theme.Progress(count, visible) + r.question(s, key),
					Default: def,
				})
				if err != nil {
					return nil, err
				}
				resolved.Set(key, answer)
				continue
			}
			resolved.Set(key, val)
		}
	}

	for _, entry := range s.Entries {
		key, raw := entry.Name, entry.Raw
		if resolved.Has(key) || schema.IsPrivate(key) {
			continue
		}
		if raw.Kind != schema.KindDict {
			continue
		}

		if raw.Dict.HasPrompts() {
			val, err := r.resolveGatedNested(ctx, resolved, key, raw.Dict, noInput)
			if err != nil {
				return nil, r.wrapRenderErr(key, s, err)
			}
			resolved.Set(key, val)
			continue
		}

		count++
		val, err := renderVariable(r.renderer, raw, resolved)
		if err != nil {
			return nil, r.wrapRenderErr(key, s, err)
		}
		if !noInput && !schema.IsDerived(key) {
			subtree, _ := val.(map[string]any)
			override, err := r.driver.JSONObject(ctx, prompt.JSONConfig{
				Message: r.theme.Progress(count, visible) + r.question(s, key),
				Default: subtree,
			})
			if err != nil {
				return nil, err
			}
			resolved.Set(key, override)
			continue
		}
		resolved.Set(key, val)
	}

	return resolved, nil
}

// resolveGatedNested handles a pass-2 nested config: resolve its fields
// when the gate holds (or no gate exists), otherwise store the raw fields
// stripped of markers, unrendered and unprompted.
func (r *Resolver) resolveGatedNested(ctx context.Context, resolved *Context, key string, cfg *schema.Dict, noInput bool) (map[string]any, error) {
	cond := cfg.Conditional()
	if cond == nil {
		return r.resolveNested(ctx, key, cfg, noInput, "")
	}
	got, _ := resolved.Get(cond.Option)
	if reflect.DeepEqual(got, cond.Value) {
		return r.resolveNested(ctx, key, cfg, noInput, "")
	}
	return cfg.WithoutMarkers(), nil
}

// question returns the custom label for a variable or the variable name
// itself.
func (r *Resolver) question(s *schema.Schema, key string) string {
	if label := s.Prompts.LabelFor(key); label != "" {
		return label
	}
	return key
}

// wrapRenderErr attaches schema-level diagnostics to template failures.
// Undefined-variable misses become fatal UndefinedVariableErrors naming
// the offending key; other errors pass through unchanged.
func (r *Resolver) wrapRenderErr(key string, s *schema.Schema, err error) error {
	if err == nil {
		return nil
	}
	var undef *template.UndefinedError
	if errors.As(err, &undef) {
		return &UndefinedVariableError{Key: key, Schema: s, Err: err}
	}
	return err
}
