// Package scaffold provides the embedded starter site written by
// `gamesite init`: a config file, structure files and sample content.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains all scaffold files. Files with a .tmpl suffix are
// executed as Go text/templates; the rest are copied verbatim.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName string
	Year     int
}

// ErrExists is returned when a file to be written is already present.
var ErrExists = errors.New("scaffold: file already exists")

// Write renders the starter site into dir, logging each created file to
// out. Nothing is written when any target file already exists.
func Write(dir string, data Data, out io.Writer) error {
	var files []string
	err := fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var existing []string
	for _, p := range files {
		if _, err := os.Stat(target(dir, p)); err == nil {
			existing = append(existing, target(dir, p))
		}
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s", ErrExists, strings.Join(existing, ", "))
	}

	for _, p := range files {
		if err := writeFile(target(dir, p), p, data); err != nil {
			return err
		}
		fmt.Fprintf(out, "  created %s\n", target(dir, p))
	}
	return nil
}

// target maps an embedded template path to its destination under dir.
func target(dir, p string) string {
	rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
	return filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(rel, ".tmpl")))
}

func writeFile(outPath, p string, data Data) error {
	raw, err := Templates.ReadFile(p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if strings.HasSuffix(p, ".tmpl") {
		tmpl, err := template.New(path.Base(p)).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", p, err)
		}
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", p, err)
		}
		return nil
	}
	if _, err := f.Write(raw); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// Title converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-arcade" -> "My Arcade"
func Title(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
