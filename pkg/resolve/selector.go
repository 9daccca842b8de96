package resolve

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/goliatone/go-scaffold/pkg/prompt"
	"github.com/goliatone/go-scaffold/pkg/schema"
)

// Schema keys recognized by template selection.
const (
	templatesKey      = "templates"
	legacyTemplateKey = "template"
)

// legacyPathPattern extracts the parenthesized path from legacy
// "label (path)" template entries.
var legacyPathPattern = regexp.MustCompile(`\((.+)\)`)

// ChooseTemplate resolves exactly one nested-template directory from the
// schema. The "templates" mapping form carries option descriptors with a
// path plus optional title/description display metadata; the legacy
// "template" list form stores "label (path)" strings. Under no-input mode
// the first declared option wins. The selected path must be a non-empty
// relative path; the result is its absolute location under repoDir.
func (r *Resolver) ChooseTemplate(ctx context.Context, s *schema.Schema, repoDir string, noInput bool) (string, error) {
	if s == nil {
		return "", fmt.Errorf("resolve: schema is required")
	}

	path, err := r.selectTemplatePath(ctx, s, noInput)
	if err != nil {
		return "", err
	}
	if path == "" || filepath.IsAbs(path) {
		return "", &InvalidTemplatePathError{Path: path}
	}

	absRepo, err := filepath.Abs(repoDir)
	if err != nil {
		return "", fmt.Errorf("resolve: resolve repository dir: %w", err)
	}
	return filepath.Join(absRepo, path), nil
}

func (r *Resolver) selectTemplatePath(ctx context.Context, s *schema.Schema, noInput bool) (string, error) {
	if raw, ok := s.Get(templatesKey); ok && raw.Kind == schema.KindDict && raw.Dict.Len() > 0 {
		chosen, err := r.selectTemplateOption(ctx, raw.Dict, noInput)
		if err != nil {
			return "", err
		}
		descriptor, _ := raw.Dict.Get(chosen)
		if descriptor.Kind != schema.KindDict {
			return "", fmt.Errorf("resolve: template option %q is not an object", chosen)
		}
		p, ok := descriptor.Dict.Get("path")
		if !ok || p.Kind != schema.KindString {
			return "", &InvalidTemplatePathError{}
		}
		return p.Str, nil
	}

	raw, ok := s.Get(legacyTemplateKey)
	if !ok || raw.Kind != schema.KindList {
		return "", prompt.ErrEmptyChoices
	}
	val, err := r.promptChoice(ctx, s, NewContext(), legacyTemplateKey, raw.List, noInput, "")
	if err != nil {
		return "", err
	}
	match := legacyPathPattern.FindStringSubmatch(fmt.Sprint(val))
	if match == nil {
		return "", &InvalidTemplatePathError{}
	}
	return match[1], nil
}

// selectTemplateOption prompts over the mapping form's option keys with
// labels built from each descriptor's title/description.
func (r *Resolver) selectTemplateOption(ctx context.Context, options *schema.Dict, noInput bool) (string, error) {
	keys := make([]string, 0, options.Len())
	rows := make([]string, 0, options.Len())
	for i, f := range options.Fields {
		keys = append(keys, f.Name)
		label := f.Name
		if f.Value.Kind == schema.KindDict {
			label = descriptorLabel(f.Name, f.Value.Dict)
		}
		rows = append(rows, r.theme.ChoiceLabel(i, label))
	}
	if len(keys) == 0 {
		return "", prompt.ErrEmptyChoices
	}
	if noInput {
		return keys[0], nil
	}

	idx, err := r.driver.Select(ctx, prompt.SelectConfig{
		Message:      "Select a template",
		Options:      rows,
		DefaultIndex: 0,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(keys) {
		return "", fmt.Errorf("resolve: template choice index %d out of range", idx)
	}
	return keys[idx], nil
}
