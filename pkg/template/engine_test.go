package template

import (
	"errors"
	"strings"
	"testing"
)

func TestNewConstructsWithoutTemplateDirectory(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("New panicked: %v", r)
		}
	}()
	if e := New(); e == nil {
		t.Fatal("New returned nil")
	}
}

func TestRenderStringSubstitutesContext(t *testing.T) {
	e := New()
	out, err := e.RenderString("{{ cookiecutter.project_name }}-svc", map[string]any{
		ContextKey: map[string]any{"project_name": "billing"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "billing-svc" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderStringAppliesFilters(t *testing.T) {
	e := New()
	out, err := e.RenderString("{{ cookiecutter.project_name|lower }}", map[string]any{
		ContextKey: map[string]any{"project_name": "My App"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "my app" {
		t.Fatalf("out = %q, want %q", out, "my app")
	}
}

func TestRenderStringUndefinedVariable(t *testing.T) {
	e := New()
	_, err := e.RenderString("{{ cookiecutter.missing }}", map[string]any{
		ContextKey: map[string]any{"present": "x"},
	})
	var undef *UndefinedError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedError, got %v", err)
	}
	if undef.Name != "missing" {
		t.Fatalf("Name = %q", undef.Name)
	}
	if !strings.Contains(undef.Error(), "missing") {
		t.Fatalf("message should identify the variable: %q", undef.Error())
	}
}

func TestRenderStringIgnoresReferencesOutsideTags(t *testing.T) {
	e := New()
	out, err := e.RenderString("see cookiecutter.docs for details", map[string]any{
		ContextKey: map[string]any{},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "see cookiecutter.docs for details" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderStringPlainText(t *testing.T) {
	e := New()
	out, err := e.RenderString("no expressions here", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "no expressions here" {
		t.Fatalf("out = %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	e := New()
	err := e.RegisterFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := e.RenderString("{{ cookiecutter.name|shout }}", map[string]any{
		ContextKey: map[string]any{"name": "hey"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "HEY!" {
		t.Fatalf("out = %q", out)
	}
}
