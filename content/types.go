// Package content loads the site's games, blog posts, categories and static
// pages once at start-up and answers read-only queries over them.
package content

import "errors"

// ErrNotFound is returned when no entity has the requested slug.
var ErrNotFound = errors.New("content: not found")

// Game is a playable game listed on the site.
type Game struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Thumbnail    string   `json:"thumbnail"`
	EmbedURL     string   `json:"embedUrl"`
	Developer    string   `json:"developer"`
	Rating       float64  `json:"rating"`
	Plays        int      `json:"plays"`
	Featured     bool     `json:"featured"`
	AddedAt      string   `json:"addedAt"` // YYYY-MM-DD
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Controls     []string `json:"controls"`
}

// CategorySlug returns the slug of the game's category.
func (g Game) CategorySlug() string {
	return Slugify(g.Category)
}

// BlogPost is an article on the blog.
type BlogPost struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"` // markdown
	Author      string   `json:"author"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	ReadingTime int      `json:"readingTime"` // minutes
}

// Category groups games.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CategoryCount pairs a category with the number of games in it.
type CategoryCount struct {
	Category
	Games int
}

// TagCount pairs a tag with how many posts use it.
type TagCount struct {
	Tag   string
	Count int
}

// Page is a static page such as about or privacy, written in markdown with
// YAML front matter.
type Page struct {
	Slug        string
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Updated     string `yaml:"updated"`
	Body        string `yaml:"-"`
}
