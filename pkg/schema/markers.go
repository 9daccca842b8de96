package schema

import "strings"

// Reserved field names inside nested dict values.
const (
	MarkerPrompts     = "__prompts__"
	MarkerConditional = "__conditional__"
	MarkerChoices     = "choices"
	MarkerNested      = "_"
)

// IsPrivate reports whether a variable name is private: single leading
// underscore. Private variables are copied through verbatim, never
// prompted, never rendered, and excluded from progress numbering.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, "_") && !strings.HasPrefix(name, "__")
}

// IsDerived reports whether a variable name is derived: double leading
// underscore. Derived variables are template-rendered but never prompted.
func IsDerived(name string) bool {
	return strings.HasPrefix(name, "__")
}

// IsVisible reports whether a variable counts toward the "question n of m"
// numbering shown to the operator.
func IsVisible(name string) bool {
	return !strings.HasPrefix(name, "_")
}

// Conditional gates whether a nested config's fields are resolved.
// Option names an already-resolved variable to compare against; when empty
// the condition applies to the immediately-preceding choice in the same
// construct. Value is the target the comparison must match.
type Conditional struct {
	Option string
	Value  any
}

// HasPrompts reports whether the dict carries the nested-config marker.
func (d *Dict) HasPrompts() bool {
	return d.Has(MarkerPrompts)
}

// IsChoiceGroup reports whether the dict is a choice-with-nested-config
// construct: a "choices" list plus a "_" sub-schema resolved right after
// the choice is made.
func (d *Dict) IsChoiceGroup() bool {
	return d.Has(MarkerChoices) && d.Has(MarkerNested)
}

// Conditional extracts the dict's gate descriptor, or nil when absent or
// malformed.
func (d *Dict) Conditional() *Conditional {
	raw, ok := d.Get(MarkerConditional)
	if !ok || raw.Kind != KindDict {
		return nil
	}
	cond := &Conditional{}
	if opt, ok := raw.Dict.Get("option"); ok && opt.Kind == KindString {
		cond.Option = opt.Str
	}
	if val, ok := raw.Dict.Get("value"); ok {
		cond.Value = val.Interface()
	}
	return cond
}

// FieldPrompts returns the dict's own __prompts__ mapping of field name to
// custom label, for nested-config prompting.
func (d *Dict) FieldPrompts() map[string]string {
	raw, ok := d.Get(MarkerPrompts)
	if !ok || raw.Kind != KindDict {
		return nil
	}
	out := make(map[string]string, raw.Dict.Len())
	for _, f := range raw.Dict.Fields {
		if f.Value.Kind == KindString {
			out[f.Name] = f.Value.Str
		}
	}
	return out
}

// WithoutMarkers returns the dict's raw fields minus the reserved marker
// entries, converted to plain Go data. This is what gets stored when a
// nested config's gate condition does not hold.
func (d *Dict) WithoutMarkers() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == MarkerPrompts || f.Name == MarkerConditional {
			continue
		}
		out[f.Name] = f.Value.Interface()
	}
	return out
}
