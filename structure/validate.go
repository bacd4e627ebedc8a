package structure

import (
	"errors"
	"fmt"
	"io/fs"
)

// Problem is one finding from Validate.
type Problem struct {
	Path    string
	Message string
	Fatal   bool // the file cannot be used and the default would be served
}

func (p Problem) String() string {
	return p.Path + ": " + p.Message
}

// Validate checks every known page structure in fsys without caching. A
// missing file is not a problem. Unreadable or malformed files are fatal;
// unknown section names and sections that are neither a flag nor an object
// are reported as warnings.
func Validate(fsys fs.FS) []Problem {
	r := NewResolver(fsys, nil, nil)
	var problems []Problem
	for _, page := range PageNames {
		name := PagePath(page)
		ps, err := Resolve[PageStructure](r, name, nil)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			problems = append(problems, Problem{Path: name, Message: err.Error(), Fatal: true})
			continue
		}
		known := DefaultPage(page).Sections
		for _, s := range ps.Sections {
			if _, ok := known.Lookup(s.Name); !ok {
				problems = append(problems, Problem{Path: name, Message: fmt.Sprintf("unknown section %q is ignored", s.Name)})
			}
			if s.Kind == KindInvalid {
				problems = append(problems, Problem{Path: name, Message: fmt.Sprintf("section %q is neither a boolean nor an object; it is disabled", s.Name)})
			}
		}
	}
	return problems
}
