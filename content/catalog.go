package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// File names read by Load, relative to the content root.
const (
	GamesFile      = "games.json"
	PostsFile      = "blog-posts.json"
	CategoriesFile = "categories.json"
	PagesGlob      = "pages/*.md"
)

const wordsPerMinute = 200

// Catalog is the immutable in-memory content set.
type Catalog struct {
	games      []Game
	posts      []BlogPost
	categories []Category
	pages      []Page

	gameIndex     map[string]int
	postIndex     map[string]int
	categoryIndex map[string]int
	pageIndex     map[string]int
}

// Load reads every content file from fsys. Missing files yield empty sets;
// malformed files are an error.
func Load(fsys fs.FS) (*Catalog, error) {
	var games []Game
	if err := readJSONArray(fsys, GamesFile, &games); err != nil {
		return nil, err
	}
	var posts []BlogPost
	if err := readJSONArray(fsys, PostsFile, &posts); err != nil {
		return nil, err
	}
	var categories []Category
	if err := readJSONArray(fsys, CategoriesFile, &categories); err != nil {
		return nil, err
	}
	pages, err := readPages(fsys)
	if err != nil {
		return nil, err
	}
	return New(games, posts, categories, pages)
}

func readJSONArray(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("content: parse %s: %w", name, err)
	}
	return nil
}

func readPages(fsys fs.FS) ([]Page, error) {
	matches, err := fs.Glob(fsys, PagesGlob)
	if err != nil {
		return nil, fmt.Errorf("content: list pages: %w", err)
	}
	sort.Strings(matches)
	pages := make([]Page, 0, len(matches))
	for _, m := range matches {
		b, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", m, err)
		}
		var p Page
		body, err := frontmatter.Parse(bytes.NewReader(b), &p)
		if err != nil {
			return nil, fmt.Errorf("content: front matter %s: %w", m, err)
		}
		p.Slug = strings.TrimSuffix(path.Base(m), ".md")
		p.Body = strings.TrimLeft(string(body), "\r\n")
		pages = append(pages, p)
	}
	return pages, nil
}

// New builds a Catalog from already-decoded records. Slugs are filled in from
// titles when empty and must be unique per kind.
func New(games []Game, posts []BlogPost, categories []Category, pages []Page) (*Catalog, error) {
	c := &Catalog{
		games:         make([]Game, 0, len(games)),
		posts:         make([]BlogPost, 0, len(posts)),
		gameIndex:     make(map[string]int, len(games)),
		postIndex:     make(map[string]int, len(posts)),
		categoryIndex: make(map[string]int),
		pageIndex:     make(map[string]int, len(pages)),
	}

	for _, g := range games {
		if g.Slug == "" {
			g.Slug = Slugify(g.Title)
		}
		if _, dup := c.gameIndex[g.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate game slug %q", g.Slug)
		}
		c.gameIndex[g.Slug] = len(c.games)
		c.games = append(c.games, g)
	}

	for _, p := range posts {
		if p.Slug == "" {
			p.Slug = Slugify(p.Title)
		}
		if _, dup := c.postIndex[p.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate post slug %q", p.Slug)
		}
		if p.ReadingTime <= 0 {
			p.ReadingTime = readingTime(p.Content)
		}
		c.postIndex[p.Slug] = len(c.posts)
		c.posts = append(c.posts, p)
	}

	for _, cat := range categories {
		if cat.Slug == "" {
			cat.Slug = Slugify(cat.Name)
		}
		if cat.Name == "" {
			cat.Name = displayName(cat.Slug)
		}
		c.addCategory(cat)
	}
	for _, g := range c.games {
		slug := g.CategorySlug()
		if slug == "" {
			continue
		}
		if _, ok := c.categoryIndex[slug]; !ok {
			c.addCategory(Category{Slug: slug, Name: displayName(g.Category)})
		}
	}

	for _, p := range pages {
		if p.Title == "" {
			p.Title = displayName(p.Slug)
		}
		if _, dup := c.pageIndex[p.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate page slug %q", p.Slug)
		}
		c.pageIndex[p.Slug] = len(c.pages)
		c.pages = append(c.pages, p)
	}
	return c, nil
}

func (c *Catalog) addCategory(cat Category) {
	if _, dup := c.categoryIndex[cat.Slug]; dup {
		return
	}
	c.categoryIndex[cat.Slug] = len(c.categories)
	c.categories = append(c.categories, cat)
}

var titleCaser = cases.Title(language.English)

// displayName turns "puzzle" or "word-games" into "Puzzle" or "Word Games".
func displayName(s string) string {
	return titleCaser.String(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
}

func readingTime(md string) int {
	words := len(strings.Fields(md))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Counts reports how many games, posts, categories and pages are loaded.
func (c *Catalog) Counts() (games, posts, categories, pages int) {
	return len(c.games), len(c.posts), len(c.categories), len(c.pages)
}

// Categories returns every category with its game count, in declaration order.
func (c *Catalog) Categories() []CategoryCount {
	counts := make(map[string]int)
	for _, g := range c.games {
		counts[g.CategorySlug()]++
	}
	out := make([]CategoryCount, len(c.categories))
	for i, cat := range c.categories {
		out[i] = CategoryCount{Category: cat, Games: counts[cat.Slug]}
	}
	return out
}

// Category returns the category with the given slug.
func (c *Catalog) Category(slug string) (Category, error) {
	i, ok := c.categoryIndex[slug]
	if !ok {
		return Category{}, ErrNotFound
	}
	return c.categories[i], nil
}

// Page returns the static page with the given slug.
func (c *Catalog) Page(slug string) (Page, error) {
	i, ok := c.pageIndex[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return c.pages[i], nil
}

// Pages returns all static pages sorted by slug.
func (c *Catalog) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
