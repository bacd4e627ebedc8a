package structure

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeSections(t *testing.T, raw string) Sections {
	t.Helper()
	var secs Sections
	if err := json.Unmarshal([]byte(raw), &secs); err != nil {
		t.Fatalf("decode sections: %v", err)
	}
	return secs
}

func TestSortComponentsByOrderExample(t *testing.T) {
	secs := decodeSections(t, `{
		"a": {"enabled": true, "order": 2},
		"b": {"enabled": false, "order": 1},
		"c": {"enabled": true, "order": 1}
	}`)
	got := Names(SortComponentsByOrder(secs))
	want := []string{"c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortComponentsByOrderFiltersDisabled(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"flags", `{"a": true, "b": false, "c": true}`, []string{"a", "c"}},
		{"missing enabled", `{"a": {"order": 1}, "b": {"enabled": true}}`, []string{"b"}},
		{"truthy enabled", `{"a": {"enabled": 1}, "b": {"enabled": "yes"}, "c": {"enabled": 0}, "d": {"enabled": ""}}`, []string{"a", "b"}},
		{"null and scalars", `{"a": null, "b": 3, "c": "x", "d": true}`, []string{"d"}},
		{"empty", `{}`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Names(SortComponentsByOrder(decodeSections(t, tt.raw)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortComponentsByOrderStable(t *testing.T) {
	secs := decodeSections(t, `{
		"z": {"enabled": true},
		"legacy": true,
		"first": {"enabled": true, "order": 1},
		"y": {"enabled": true, "order": 5},
		"x": {"enabled": true, "order": 5},
		"w": {"enabled": true, "order": "nope"}
	}`)
	got := Names(SortComponentsByOrder(secs))
	want := []string{"first", "y", "x", "z", "legacy", "w"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortComponentsByOrderCoercesNumericStrings(t *testing.T) {
	secs := decodeSections(t, `{"a": {"enabled": true, "order": "10"}, "b": {"enabled": true, "order": 2.5}}`)
	got := Names(SortComponentsByOrder(secs))
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestSectionsKeepDeclarationOrder(t *testing.T) {
	secs := decodeSections(t, `{"c": true, "a": true, "b": true, "a": false}`)
	if got := Names(secs); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("names = %v", got)
	}
	a, _ := secs.Lookup("a")
	if a.Enabled {
		t.Errorf("duplicate key should take the last value")
	}
}

func TestSectionsRejectNonObject(t *testing.T) {
	var secs Sections
	if err := json.Unmarshal([]byte(`[1,2]`), &secs); err == nil {
		t.Fatal("expected error for array input")
	}
}

func TestParseSectionKinds(t *testing.T) {
	secs := decodeSections(t, `{"f": true, "o": {"enabled": true, "order": 3, "limit": 4}, "bad": 7}`)
	f, _ := secs.Lookup("f")
	if f.Kind != KindFlag || f.Order != DefaultOrder || f.HasOrder {
		t.Errorf("flag section = %+v", f)
	}
	o, _ := secs.Lookup("o")
	if o.Kind != KindObject || o.Order != 3 || !o.HasOrder {
		t.Errorf("object section = %+v", o)
	}
	if _, ok := o.Props["enabled"]; ok {
		t.Errorf("props should not carry enabled")
	}
	if o.Int("limit", 0) != 4 {
		t.Errorf("limit = %d", o.Int("limit", 0))
	}
	bad, _ := secs.Lookup("bad")
	if bad.Kind != KindInvalid || bad.Enabled {
		t.Errorf("invalid section = %+v", bad)
	}
}

func TestSectionAccessors(t *testing.T) {
	secs := decodeSections(t, `{"s": {
		"enabled": true,
		"title": "Hot",
		"limit": "6",
		"columns": 3.9,
		"wide": false,
		"dense": 1,
		"ids": ["a", 2, "b"],
		"oops": {"nested": true}
	}}`)
	s, _ := secs.Lookup("s")
	if got := s.String("title", "x"); got != "Hot" {
		t.Errorf("String = %q", got)
	}
	if got := s.String("oops", "fallback"); got != "fallback" {
		t.Errorf("String on object = %q", got)
	}
	if got := s.Int("limit", 0); got != 6 {
		t.Errorf("Int from string = %d", got)
	}
	if got := s.Int("columns", 0); got != 3 {
		t.Errorf("Int from float = %d", got)
	}
	if got := s.Int("missing", 8); got != 8 {
		t.Errorf("Int default = %d", got)
	}
	if s.Bool("wide", true) {
		t.Errorf("Bool false value")
	}
	if !s.Bool("dense", false) {
		t.Errorf("Bool truthy number")
	}
	if !s.Bool("missing", true) {
		t.Errorf("Bool default")
	}
	if got := s.Strings("ids"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Strings = %v", got)
	}
}

func TestPageStructureUnmarshal(t *testing.T) {
	var wrapped PageStructure
	if err := json.Unmarshal([]byte(`{"title": "Home", "sections": {"b": true, "a": {"enabled": true, "order": 1}}}`), &wrapped); err != nil {
		t.Fatal(err)
	}
	if wrapped.Title != "Home" {
		t.Errorf("Title = %q", wrapped.Title)
	}
	if got := Names(SortComponentsByOrder(wrapped.Sections)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("wrapped order = %v", got)
	}

	var bare PageStructure
	if err := json.Unmarshal([]byte(`{"hero": true, "games": {"enabled": true, "order": 0}}`), &bare); err != nil {
		t.Fatal(err)
	}
	if got := Names(SortComponentsByOrder(bare.Sections)); !reflect.DeepEqual(got, []string{"games", "hero"}) {
		t.Errorf("bare order = %v", got)
	}
}

func TestDefaultPagesHaveEnabledSections(t *testing.T) {
	for _, name := range PageNames {
		ps := DefaultPage(name)
		if len(SortComponentsByOrder(ps.Sections)) == 0 {
			t.Errorf("default %s has no enabled sections", name)
		}
	}
	if len(DefaultPage("nope").Sections) != 0 {
		t.Errorf("unknown page should have no sections")
	}
}
