// Package template wraps a pongo2 template set behind the narrow Renderer
// seam the resolvers consume: render one template string against the
// accumulated context, failing loudly when the template references a
// variable that has not been resolved yet.
package template

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// ContextKey is the single binding template expressions read resolved
// variables through, e.g. {{ cookiecutter.project_name }}.
const ContextKey = "cookiecutter"

// Renderer is the contract the resolvers depend on. The production
// implementation is Engine; tests may substitute their own.
type Renderer interface {
	RenderString(templateContent string, data any) (string, error)
}

// Engine satisfies Renderer using a pongo2 template set.
type Engine struct {
	mu  sync.RWMutex
	set *pongo2.TemplateSet
}

// Ensure Engine implements the Renderer interface.
var _ Renderer = (*Engine)(nil)

// Option configures the engine before construction.
type Option func(*Engine)

// New constructs an Engine. Templates are always parsed from strings, but
// pongo2 requires at least one loader per set, so the set carries a local
// filesystem loader rooted at the working directory.
func New(options ...Option) *Engine {
	e := &Engine{
		set: pongo2.NewSet("scaffold", pongo2.MustNewLocalFileSystemLoader("")),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// RenderString parses templateContent and executes it against data, which
// is expected to be a map carrying the resolved context under ContextKey.
// A reference to an unresolved variable returns an *UndefinedError rather
// than pongo2's silent empty substitution.
func (e *Engine) RenderString(templateContent string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", fmt.Errorf("template: engine is nil")
	}

	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("template: convert data: %w", err)
	}

	if name := firstUndefined(templateContent, viewContext); name != "" {
		return "", &UndefinedError{Name: name, Template: templateContent}
	}

	e.mu.RLock()
	tmpl, err := e.set.FromString(templateContent)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("template: parse template string: %w", err)
	}

	rendered, err := tmpl.Execute(viewContext)
	if err != nil {
		return "", fmt.Errorf("template: execute template string: %w", err)
	}
	return rendered, nil
}

// RegisterFilter registers a template filter usable from expressions, e.g.
// {{ cookiecutter.name|slugify }}.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return fmt.Errorf("template: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if pongo2.FilterExists(name) {
		return pongo2.ReplaceFilter(name, filter)
	}
	return pongo2.RegisterFilter(name, filter)
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("unsupported data type %T", data)
	}
}

var (
	tagPattern = regexp.MustCompile(`\{\{[\s\S]*?\}\}|\{%[\s\S]*?%\}`)
	refPattern = regexp.MustCompile(`\bcookiecutter\.([A-Za-z_][A-Za-z0-9_]*)`)
)

// firstUndefined scans template tags for cookiecutter.<name> references and
// returns the first name missing from the bound context. pongo2 renders
// unknown names as empty strings, so the scan happens up front.
func firstUndefined(templateContent string, viewContext pongo2.Context) string {
	bound, _ := viewContext[ContextKey].(map[string]any)
	for _, tag := range tagPattern.FindAllString(templateContent, -1) {
		for _, ref := range refPattern.FindAllStringSubmatch(tag, -1) {
			name := ref[1]
			if _, ok := bound[name]; !ok {
				return name
			}
		}
	}
	return ""
}
