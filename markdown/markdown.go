// Package markdown renders blog and page bodies to HTML as templ components.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Raw HTML in sources is dropped; goldmark only emits it with html.WithUnsafe.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := RenderMarkdown(&buf, content); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of content to buf.
func RenderMarkdown(buf *bytes.Buffer, content string) error {
	return md.Convert([]byte(content), buf)
}

var (
	reLink   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	reMarkup = regexp.MustCompile("[#*_`>]+")
)

// Excerpt returns roughly the first n runes of content as plain text, cut at
// a word boundary. Used for summaries when a record has no explicit excerpt.
func Excerpt(content string, n int) string {
	text := reLink.ReplaceAllString(content, "$1")
	text = reMarkup.ReplaceAllString(text, "")
	words := strings.Fields(text)
	var b strings.Builder
	for _, w := range words {
		if b.Len() > 0 && utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(w) > n {
			return b.String() + "…"
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
