package schema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParsePreservesDeclarationOrder(t *testing.T) {
	raw := []byte(`{
		"zulu": "1",
		"alpha": "2",
		"mike": "3",
		"bravo": "4",
		"yankee": "5"
	}`)

	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	names := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		names = append(names, e.Name)
	}
	want := []string{"zulu", "alpha", "mike", "bravo", "yankee"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnwrapsRootKey(t *testing.T) {
	raw := []byte(`{"cookiecutter": {"project_name": "My App"}}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, ok := s.Get("project_name")
	if !ok || v.Str != "My App" {
		t.Fatalf("expected unwrapped project_name, got %+v (found %v)", v, ok)
	}
}

func TestParseToleratesComments(t *testing.T) {
	raw := []byte(`{
		// the project display name
		"project_name": "My App",
		"use_docker": false, // trailing comma next
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestParseKinds(t *testing.T) {
	raw := []byte(`{
		"name": "app",
		"flag": true,
		"count": 3,
		"ratio": 0.5,
		"nothing": null,
		"options": ["a", "b"],
		"nested": {"x": 1}
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantKinds := map[string]Kind{
		"name":    KindString,
		"flag":    KindBool,
		"count":   KindNumber,
		"ratio":   KindNumber,
		"nothing": KindNull,
		"options": KindList,
		"nested":  KindDict,
	}
	for name, want := range wantKinds {
		v, ok := s.Get(name)
		if !ok {
			t.Fatalf("missing entry %q", name)
		}
		if v.Kind != want {
			t.Errorf("%s: kind = %s, want %s", name, v.Kind, want)
		}
	}
}

func TestParseExtractsPrompts(t *testing.T) {
	raw := []byte(`{
		"project_name": "My App",
		"license": ["MIT", "BSD"],
		"__prompts__": {
			"project_name": "What should we call it?",
			"license": {
				"__prompt__": "Pick a license",
				"MIT": "MIT License",
				"BSD": "BSD License"
			}
		}
	}`)
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := s.Len(); got != 2 {
		t.Fatalf("__prompts__ must not appear as a variable, got %d entries", got)
	}
	if got := s.Prompts.LabelFor("project_name"); got != "What should we call it?" {
		t.Fatalf("label = %q", got)
	}
	spec := s.Prompts["license"]
	if spec.Question != "Pick a license" {
		t.Fatalf("question = %q", spec.Question)
	}
	if diff := cmp.Diff(map[string]string{"MIT": "MIT License", "BSD": "BSD License"}, spec.Options); diff != "" {
		t.Fatalf("option labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLMapping(t *testing.T) {
	raw := []byte("project_name: My App\nuse_docker: true\n")
	s, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, ok := s.Get("use_docker")
	if !ok || v.Kind != KindBool || !v.Bool {
		t.Fatalf("expected bool true, got %+v", v)
	}
}

func TestParseRejectsNonObjectRoot(t *testing.T) {
	if _, err := Parse([]byte(`["a"]`)); err == nil {
		t.Fatal("expected error for array root")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/cookiecutter.json": {
			Data: []byte(`{"project_name": "My App", "use_docker": false}`),
		},
	}

	s, err := LoadFS(fsys, "templates/cookiecutter.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	_, err = LoadFS(fsys, "templates/missing.json")
	if err == nil || !strings.Contains(err.Error(), "templates/missing.json") {
		t.Fatalf("error should name the missing entry, got %v", err)
	}
}

func TestLoadBytesLabelsErrors(t *testing.T) {
	s, err := LoadBytes("settings", []byte(`{"project_name": "My App"}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := s.Get("project_name"); !ok {
		t.Fatal("missing project_name")
	}

	_, err = LoadBytes("settings", []byte(`["a"]`))
	if err == nil || !strings.Contains(err.Error(), "settings") {
		t.Fatalf("error should carry the label, got %v", err)
	}

	_, err = LoadBytes("", []byte(`not: [valid`))
	if err == nil || !strings.Contains(err.Error(), "<inline>") {
		t.Fatalf("unlabeled documents report <inline>, got %v", err)
	}
}

func TestNewDocumentRejectsEmptyPayload(t *testing.T) {
	if _, err := NewDocument("cookiecutter.json", nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
