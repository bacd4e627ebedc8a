// Package structure resolves per-page structure files and decides which
// sections a page renders and in what order.
//
// A structure file maps section names to either a bare boolean or an object
// such as {"enabled": true, "order": 2, "limit": 8}. Both forms are normalized
// into Section values at decode time so callers never branch on JSON types.
package structure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultOrder is the order assigned to sections that do not declare one.
const DefaultOrder = 999

// SectionKind records which JSON form a section was declared with.
type SectionKind int

const (
	// KindInvalid is a section whose value was neither a boolean nor an object.
	KindInvalid SectionKind = iota
	// KindFlag is the legacy shorthand: "name": true.
	KindFlag
	// KindObject is the full form: "name": {"enabled": ..., "order": ...}.
	KindObject
)

func (k SectionKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Section is one named block of a page.
type Section struct {
	Name     string
	Kind     SectionKind
	Enabled  bool
	Order    float64
	HasOrder bool
	Props    map[string]any
}

// Sections is a list of sections in declaration order.
type Sections []Section

// PageStructure is the decoded form of a structure file.
type PageStructure struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Sections    Sections `json:"sections"`
}

// UnmarshalJSON accepts both {"sections": {...}} and a bare sections object.
func (p *PageStructure) UnmarshalJSON(b []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	if probe == nil {
		*p = PageStructure{}
		return nil
	}
	if _, ok := probe["sections"]; !ok {
		var secs Sections
		if err := secs.UnmarshalJSON(b); err != nil {
			return err
		}
		*p = PageStructure{Sections: secs}
		return nil
	}
	type plain PageStructure
	var out plain
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*p = PageStructure(out)
	return nil
}

// UnmarshalJSON decodes a JSON object into sections, keeping key order.
// A repeated key replaces the earlier value but keeps its position.
func (s *Sections) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("structure: sections must be a JSON object, got %v", tok)
	}

	var out Sections
	index := make(map[string]int)
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := kt.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("structure: section %q: %w", name, err)
		}
		sec := parseSection(name, raw)
		if i, dup := index[name]; dup {
			out[i] = sec
			continue
		}
		index[name] = len(out)
		out = append(out, sec)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

func parseSection(name string, raw json.RawMessage) Section {
	sec := Section{Name: name, Order: DefaultOrder}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return sec
	}
	switch val := v.(type) {
	case bool:
		sec.Kind = KindFlag
		sec.Enabled = val
	case map[string]any:
		sec.Kind = KindObject
		sec.Enabled = truthy(val["enabled"])
		if o, ok := coerceOrder(val["order"]); ok {
			sec.Order = o
			sec.HasOrder = true
		}
		props := make(map[string]any, len(val))
		for k, pv := range val {
			if k == "enabled" || k == "order" {
				continue
			}
			props[k] = pv
		}
		sec.Props = props
	}
	return sec
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0 && !math.IsNaN(val)
	case string:
		return val != ""
	default:
		return true
	}
}

func coerceOrder(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// SortComponentsByOrder returns the enabled sections sorted by ascending
// order. Sections with equal order keep their declaration order.
func SortComponentsByOrder(sections Sections) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.Enabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Lookup returns the section with the given name.
func (s Sections) Lookup(name string) (Section, bool) {
	for _, sec := range s {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// Names returns the section names in the order given.
func Names(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

// String returns the string option key, or def when absent or not a string.
func (s Section) String(key, def string) string {
	if v, ok := s.Props[key].(string); ok {
		return v
	}
	return def
}

// Int returns the numeric option key truncated to int, or def.
func (s Section) Int(key string, def int) int {
	switch v := s.Props[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Bool returns the boolean option key, or def when absent.
// Non-boolean values use JavaScript truthiness.
func (s Section) Bool(key string, def bool) bool {
	v, ok := s.Props[key]
	if !ok || v == nil {
		return def
	}
	return truthy(v)
}

// Strings returns the option key as a string slice, skipping non-string items.
func (s Section) Strings(key string) []string {
	items, ok := s.Props[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if str, ok := it.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
