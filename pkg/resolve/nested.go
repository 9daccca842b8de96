package resolve

import (
	"context"
	"fmt"

	"github.com/goliatone/go-scaffold/pkg/prompt"
	"github.com/goliatone/go-scaffold/pkg/schema"
)

// resolveNested walks a nested config's fields in declaration order,
// skipping the reserved markers. Fields that are themselves nested configs
// recurse with one more level of indentation; everything else is either
// copied verbatim (no-input) or asked through the free-text prompt with
// the field's default. Values come back exactly as the prompt driver
// returns them; there is no type coercion.
func (r *Resolver) resolveNested(ctx context.Context, parentKey string, cfg *schema.Dict, noInput bool, indent string) (map[string]any, error) {
	labels := cfg.FieldPrompts()
	nestedIndent := r.theme.NextIndent(indent)

	out := make(map[string]any, cfg.Len())
	for _, f := range cfg.Fields {
		if f.Name == schema.MarkerPrompts || f.Name == schema.MarkerConditional {
			continue
		}

		if f.Value.Kind == schema.KindDict && f.Value.Dict.HasPrompts() {
			sub, err := r.resolveNested(ctx, f.Name, f.Value.Dict, noInput, nestedIndent)
			if err != nil {
				return nil, err
			}
			out[f.Name] = sub
			continue
		}

		defaultVal := f.Value.Interface()
		if noInput {
			out[f.Name] = defaultVal
			continue
		}

		message := labels[f.Name]
		if message == "" {
			message = r.theme.NestedLabel(nestedIndent, f.Name, defaultVal)
		}
		answer, err := r.driver.Input(ctx, prompt.InputConfig{
			Message: message,
			Default: fmt.Sprint(defaultVal),
		})
		if err != nil {
			return nil, err
		}
		out[f.Name] = answer
	}
	return out, nil
}
