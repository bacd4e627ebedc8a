package structure

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestValidate(t *testing.T) {
	fsys := fstest.MapFS{
		"structure/homepage.json":  {Data: []byte(`{"sections": {"hero": true, "carousel": {"enabled": true}, "about": 3}}`)},
		"structure/game-page.json": {Data: []byte(`{"sections": [`)},
		"structure/blog-page.json": {Data: []byte(`{"header": true, "postList": {"enabled": true, "order": 2}}`)},
	}
	problems := Validate(fsys)

	var fatal, warnings []string
	for _, p := range problems {
		if p.Fatal {
			fatal = append(fatal, p.String())
		} else {
			warnings = append(warnings, p.String())
		}
	}
	if len(fatal) != 1 || !strings.HasPrefix(fatal[0], "structure/game-page.json: ") {
		t.Errorf("fatal = %v", fatal)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v", warnings)
	}
	if !strings.Contains(warnings[0], `unknown section "carousel"`) {
		t.Errorf("warnings[0] = %q", warnings[0])
	}
	if !strings.Contains(warnings[1], `section "about" is neither`) {
		t.Errorf("warnings[1] = %q", warnings[1])
	}
}

func TestValidateEmptyFS(t *testing.T) {
	if problems := Validate(fstest.MapFS{}); len(problems) != 0 {
		t.Fatalf("problems = %v", problems)
	}
}
