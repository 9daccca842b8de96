// Package schema models the declarative configuration schema consumed by
// the resolvers: an ordered mapping of variable names to raw values, plus
// the reserved-name conventions (__prompts__, __conditional__, private and
// derived variables) schemas use to shape prompting.
package schema

// Entry is one top-level variable declaration.
type Entry struct {
	Name string
	Raw  RawValue
}

// Schema is the ordered set of variable declarations. Declaration order is
// an externally visible contract: it is both the prompting order shown to
// the operator and the order later defaults may reference earlier answers.
type Schema struct {
	Entries []Entry
	// Prompts holds the root-level __prompts__ block, extracted at load
	// time so it never appears as a variable.
	Prompts Prompts
}

// Get returns the raw value declared under name.
func (s *Schema) Get(name string) (RawValue, bool) {
	if s == nil {
		return RawValue{}, false
	}
	for _, e := range s.Entries {
		if e.Name == name {
			return e.Raw, true
		}
	}
	return RawValue{}, false
}

// Len reports the number of declared variables.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// VisibleCount reports how many variables count toward progress numbering.
func (s *Schema) VisibleCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range s.Entries {
		if IsVisible(e.Name) {
			n++
		}
	}
	return n
}

// PromptSpec is one entry of the root __prompts__ block. Label carries the
// plain-string form used for text, yes/no, and dict questions. Choice
// blocks use Question (from the reserved __prompt__ field) for the overall
// question plus Options for per-option display labels.
type PromptSpec struct {
	Label    string
	Question string
	Options  map[string]string
}

// Prompts maps variable names to their custom prompt labels.
type Prompts map[string]PromptSpec

// LabelFor returns the plain custom label for a variable, or "" when none
// is declared.
func (p Prompts) LabelFor(name string) string {
	if p == nil {
		return ""
	}
	return p[name].Label
}

// promptsFromRaw interprets a root-level __prompts__ value.
func promptsFromRaw(raw RawValue) Prompts {
	if raw.Kind != KindDict {
		return nil
	}
	out := make(Prompts, raw.Dict.Len())
	for _, f := range raw.Dict.Fields {
		switch f.Value.Kind {
		case KindString:
			out[f.Name] = PromptSpec{Label: f.Value.Str}
		case KindDict:
			spec := PromptSpec{Options: make(map[string]string, f.Value.Dict.Len())}
			for _, opt := range f.Value.Dict.Fields {
				if opt.Value.Kind != KindString {
					continue
				}
				if opt.Name == "__prompt__" {
					spec.Question = opt.Value.Str
					continue
				}
				spec.Options[opt.Name] = opt.Value.Str
			}
			out[f.Name] = spec
		}
	}
	return out
}
