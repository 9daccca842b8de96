package resolve

import (
	"github.com/goliatone/go-scaffold/pkg/schema"
	"github.com/goliatone/go-scaffold/pkg/template"
)

// renderVariable materializes one raw schema value against the context so
// far: booleans and nulls pass through unchanged, dicts and lists are
// walked structurally (keys included), and everything else is treated as a
// template string evaluated with the context bound under
// template.ContextKey.
func renderVariable(r template.Renderer, raw schema.RawValue, ctx *Context) (any, error) {
	switch raw.Kind {
	case schema.KindNull:
		return nil, nil
	case schema.KindBool:
		return raw.Bool, nil
	case schema.KindDict:
		out := make(map[string]any, raw.Dict.Len())
		for _, f := range raw.Dict.Fields {
			key, err := renderString(r, f.Name, ctx)
			if err != nil {
				return nil, err
			}
			val, err := renderVariable(r, f.Value, ctx)
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	case schema.KindList:
		out := make([]any, len(raw.List))
		for i, elem := range raw.List {
			val, err := renderVariable(r, elem, ctx)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	default:
		// Strings and numbers are both rendered through their literal
		// text, matching the coerce-to-string templating contract.
		return renderString(r, raw.Str, ctx)
	}
}

func renderString(r template.Renderer, tpl string, ctx *Context) (string, error) {
	return r.RenderString(tpl, map[string]any{template.ContextKey: ctx.Map()})
}
