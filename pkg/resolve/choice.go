package resolve

import (
	"context"
	"fmt"
	"reflect"

	"github.com/goliatone/go-scaffold/pkg/prompt"
	"github.com/goliatone/go-scaffold/pkg/schema"
)

// resolveChoiceGroup handles the choice-with-nested-config construct:
// prompt for the choice, then resolve the "_" sub-schema immediately when
// its gate (compared against the just-made choice) holds. Under no-input
// mode only the choice is stored; nested prompts are inherently
// interactive and are never defaulted through this path.
func (r *Resolver) resolveChoiceGroup(ctx context.Context, s *schema.Schema, resolved *Context, key string, group *schema.Dict, noInput bool, prefix string) error {
	choicesRaw, _ := group.Get(schema.MarkerChoices)
	options, labels := choiceOptions(choicesRaw)

	choiceVal, err := r.promptChoiceWithLabels(ctx, s, resolved, key, options, labels, noInput, prefix)
	if err != nil {
		return r.wrapRenderErr(key, s, err)
	}

	nestedRaw, _ := group.Get(schema.MarkerNested)
	nested := nestedRaw.Dict

	result := map[string]any{ChoiceKey: choiceVal}
	merge := false
	if !noInput && nested != nil {
		if cond := nested.Conditional(); cond != nil {
			merge = conditionHolds(choiceVal, cond.Value)
		} else {
			merge = true
		}
	}
	if merge {
		nestedVals, err := r.resolveNested(ctx, key, nested, noInput, r.theme.NextIndent(""))
		if err != nil {
			return err
		}
		for k, v := range nestedVals {
			result[k] = v
		}
	}
	resolved.Set(key, result)
	return nil
}

// promptChoice resolves a plain list variable: render every element, then
// select one (the first under no-input).
func (r *Resolver) promptChoice(ctx context.Context, s *schema.Schema, resolved *Context, key string, options []schema.RawValue, noInput bool, prefix string) (any, error) {
	val, err := r.promptChoiceWithLabels(ctx, s, resolved, key, options, nil, noInput, prefix)
	if err != nil {
		return nil, r.wrapRenderErr(key, s, err)
	}
	return val, nil
}

func (r *Resolver) promptChoiceWithLabels(ctx context.Context, s *schema.Schema, resolved *Context, key string, options []schema.RawValue, optionLabels map[string]string, noInput bool, prefix string) (any, error) {
	if len(options) == 0 {
		return nil, prompt.ErrEmptyChoices
	}

	rendered := make([]any, len(options))
	for i, raw := range options {
		val, err := renderVariable(r.renderer, raw, resolved)
		if err != nil {
			return nil, err
		}
		rendered[i] = val
	}

	if noInput {
		return rendered[0], nil
	}

	spec := s.Prompts[key]
	question := "Select " + key
	switch {
	case spec.Label != "":
		question = spec.Label
	case spec.Question != "":
		question = spec.Question
	}

	rows := make([]string, len(rendered))
	for i, val := range rendered {
		display := fmt.Sprint(val)
		if label, ok := optionLabels[display]; ok {
			display = label
		} else if label, ok := spec.Options[display]; ok {
			display = label
		}
		rows[i] = r.theme.ChoiceLabel(i, display)
	}

	idx, err := r.driver.Select(ctx, prompt.SelectConfig{
		Message:      prefix + question,
		Options:      rows,
		DefaultIndex: 0,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(rendered) {
		return nil, fmt.Errorf("resolve: choice index %d out of range for %q", idx, key)
	}
	return rendered[idx], nil
}

// choiceOptions normalizes the two authored shapes of a choice set: a
// plain list of values, or a mapping of option key to descriptor where the
// descriptor may carry title/description display metadata.
func choiceOptions(raw schema.RawValue) ([]schema.RawValue, map[string]string) {
	switch raw.Kind {
	case schema.KindList:
		return raw.List, nil
	case schema.KindDict:
		options := make([]schema.RawValue, 0, raw.Dict.Len())
		labels := make(map[string]string, raw.Dict.Len())
		for _, f := range raw.Dict.Fields {
			options = append(options, schema.String(f.Name))
			if f.Value.Kind == schema.KindDict {
				if label := descriptorLabel(f.Name, f.Value.Dict); label != "" {
					labels[f.Name] = label
				}
			}
		}
		return options, labels
	default:
		return nil, nil
	}
}

// descriptorLabel builds a display label from an option descriptor's
// title/description, falling back to the option key.
func descriptorLabel(key string, descriptor *schema.Dict) string {
	title := key
	if v, ok := descriptor.Get("title"); ok && v.Kind == schema.KindString {
		title = v.Str
	}
	description := key
	if v, ok := descriptor.Get("description"); ok && v.Kind == schema.KindString {
		description = v.Str
	}
	if title == description {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, description)
}

// conditionHolds compares a just-made choice against a gate target.
func conditionHolds(choice any, target any) bool {
	return reflect.DeepEqual(choice, target)
}
