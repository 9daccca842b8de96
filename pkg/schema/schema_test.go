package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReservedNameConventions(t *testing.T) {
	cases := []struct {
		name    string
		private bool
		derived bool
		visible bool
	}{
		{name: "project_name", private: false, derived: false, visible: true},
		{name: "_copy_without_render", private: true, derived: false, visible: false},
		{name: "__slug", private: false, derived: true, visible: false},
		{name: "_", private: true, derived: false, visible: false},
		{name: "__", private: false, derived: true, visible: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPrivate(tc.name); got != tc.private {
				t.Errorf("IsPrivate(%q) = %v, want %v", tc.name, got, tc.private)
			}
			if got := IsDerived(tc.name); got != tc.derived {
				t.Errorf("IsDerived(%q) = %v, want %v", tc.name, got, tc.derived)
			}
			if got := IsVisible(tc.name); got != tc.visible {
				t.Errorf("IsVisible(%q) = %v, want %v", tc.name, got, tc.visible)
			}
		})
	}
}

func TestDictMarkers(t *testing.T) {
	nested := NewDict(
		Field{Name: MarkerPrompts, Value: RawValue{Kind: KindDict, Dict: NewDict(
			Field{Name: "port", Value: String("Which port?")},
		)}},
		Field{Name: MarkerConditional, Value: RawValue{Kind: KindDict, Dict: NewDict(
			Field{Name: "option", Value: String("use_db")},
			Field{Name: "value", Value: String("yes")},
		)}},
		Field{Name: "port", Value: Number("5432")},
	)

	if !nested.HasPrompts() {
		t.Fatal("expected HasPrompts to be true")
	}
	cond := nested.Conditional()
	if cond == nil {
		t.Fatal("expected a conditional descriptor")
	}
	if cond.Option != "use_db" || cond.Value != "yes" {
		t.Fatalf("unexpected conditional: %+v", cond)
	}

	labels := nested.FieldPrompts()
	if diff := cmp.Diff(map[string]string{"port": "Which port?"}, labels); diff != "" {
		t.Fatalf("field prompts mismatch (-want +got):\n%s", diff)
	}

	stripped := nested.WithoutMarkers()
	if diff := cmp.Diff(map[string]any{"port": 5432}, stripped); diff != "" {
		t.Fatalf("stripped fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDictChoiceGroupDetection(t *testing.T) {
	group := NewDict(
		Field{Name: MarkerChoices, Value: RawValue{Kind: KindList, List: []RawValue{String("yes"), String("no")}}},
		Field{Name: MarkerNested, Value: RawValue{Kind: KindDict, Dict: NewDict()}},
	)
	if !group.IsChoiceGroup() {
		t.Fatal("expected choice group detection")
	}

	plain := NewDict(Field{Name: MarkerChoices, Value: RawValue{Kind: KindList}})
	if plain.IsChoiceGroup() {
		t.Fatal("choices without nested sub-schema must not classify as a choice group")
	}
}

func TestRawValueInterface(t *testing.T) {
	cases := []struct {
		name string
		raw  RawValue
		want any
	}{
		{"null", RawValue{Kind: KindNull}, nil},
		{"string", String("hi"), "hi"},
		{"bool", Boolean(true), true},
		{"int", Number("42"), 42},
		{"float", Number("1.5"), 1.5},
		{"list", RawValue{Kind: KindList, List: []RawValue{Number("1"), String("b")}}, []any{1, "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.raw.Interface()); diff != "" {
				t.Fatalf("Interface mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaVisibleCount(t *testing.T) {
	s := &Schema{Entries: []Entry{
		{Name: "a", Raw: String("1")},
		{Name: "_private", Raw: String("2")},
		{Name: "__derived", Raw: String("3")},
		{Name: "b", Raw: String("4")},
	}}
	if got := s.VisibleCount(); got != 2 {
		t.Fatalf("VisibleCount = %d, want 2", got)
	}
}
