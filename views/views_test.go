package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/gamesite/content"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

var testSite = SiteConfig{
	Name:        "Arcade",
	URL:         "https://arcade.example",
	Description: "Free games",
	Nav:         []NavLink{{Label: "Blog", URL: "/blog/"}},
	Footer:      Footer{Text: "© Arcade", Links: []NavLink{{Label: "Privacy", URL: "/privacy/"}}},
}

func TestPageLayout(t *testing.T) {
	meta := PageMeta{Title: "Snake", URL: "https://arcade.example/games/snake/", JSONLD: `{"@type":"VideoGame"}`}
	got := renderString(t, Page(testSite, meta, Header("Snake <3", "")))
	for _, want := range []string{
		"<title>Snake | Arcade</title>",
		`<link rel="canonical" href="https://arcade.example/games/snake/"/>`,
		`<meta name="description" content="Free games"/>`,
		`<script type="application/ld+json">{"@type":"VideoGame"}</script>`,
		`<a href="/blog/">Blog</a>`,
		"Snake &lt;3",
		"© Arcade",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("layout missing %q", want)
		}
	}
}

func TestPageTitleFallsBackToSiteName(t *testing.T) {
	got := renderString(t, Page(testSite, PageMeta{}, Sections()))
	if !strings.Contains(got, "<title>Arcade</title>") {
		t.Errorf("title = %q", got)
	}
}

func TestGameGridEscapesAndFormats(t *testing.T) {
	games := []content.Game{{Slug: "snake", Title: "Snake & Co", Plays: 12345, Rating: 4.3}}
	got := renderString(t, GameGrid("Popular", games, GridOptions{Columns: 3, ShowPlays: true, ShowRating: true}))
	for _, want := range []string{
		`class="game-grid cols-3"`,
		`href="/games/snake/"`,
		"Snake &amp; Co",
		"12.3K plays",
		"★ 4.3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("grid %q missing %q", got, want)
		}
	}
}

func TestGameGridEmpty(t *testing.T) {
	if got := renderString(t, GameGrid("Popular", nil, GridOptions{})); got != "" {
		t.Errorf("empty grid rendered %q", got)
	}
	got := renderString(t, GameGrid("Games", nil, GridOptions{Empty: "No games yet."}))
	if !strings.Contains(got, "No games yet.") {
		t.Errorf("empty message missing: %q", got)
	}
}

func TestBreadcrumbsLastIsPlain(t *testing.T) {
	got := renderString(t, Breadcrumbs([]Crumb{{Label: "Home", URL: "/"}, {Label: "Snake", URL: "/games/snake/"}}))
	if !strings.Contains(got, `<a href="/">Home</a>`) {
		t.Errorf("first crumb not linked: %q", got)
	}
	if !strings.Contains(got, `<li aria-current="page">Snake</li>`) {
		t.Errorf("last crumb linked: %q", got)
	}
}

func TestGamePlayerUsesGameSize(t *testing.T) {
	got := renderString(t, GamePlayer(content.Game{Title: "Snake", EmbedURL: "https://cdn.example/snake/", Width: 640}, 800, 600))
	if !strings.Contains(got, `width="640" height="600"`) {
		t.Errorf("player size: %q", got)
	}
	got = renderString(t, GamePlayer(content.Game{Title: "Gone"}, 800, 600))
	if strings.Contains(got, "<iframe") {
		t.Errorf("iframe rendered without embed URL: %q", got)
	}
}

func TestArticleRendersMarkdown(t *testing.T) {
	p := content.BlogPost{Slug: "tips", Title: "Tips", Date: "2024-05-01", Content: "Use **arrows**.", Tags: []string{"guides"}, ReadingTime: 1}
	got := renderString(t, Article(p, ArticleOptions{ShowDate: true, ShowTags: true}))
	for _, want := range []string{"<strong>arrows</strong>", "1 min read", `href="/blog/?tag=guides"`, `datetime="2024-05-01"`} {
		if !strings.Contains(got, want) {
			t.Errorf("article %q missing %q", got, want)
		}
	}
}

func TestSearchResults(t *testing.T) {
	if got := renderString(t, SearchResults("  ", nil)); got != "" {
		t.Errorf("blank query rendered %q", got)
	}
	got := renderString(t, SearchResults("zzz", nil))
	if !strings.Contains(got, "No results") {
		t.Errorf("missing no-results message: %q", got)
	}
	got = renderString(t, SearchResults("snake", []SearchResult{{Kind: "game", Title: "Snake", URL: "/games/snake/"}}))
	if !strings.Contains(got, "1 results") || !strings.Contains(got, `href="/games/snake/"`) {
		t.Errorf("results = %q", got)
	}
}

func TestAdminDashboard(t *testing.T) {
	data := AdminData{
		Mode:     "development",
		CacheTTL: time.Minute,
		Entries:  []CacheEntryView{{Path: "structure/homepage.json", Age: 90 * time.Second, Expired: true}},
		Pages:    []PageOrderView{{Page: "homepage", Sections: []string{"hero", "popularGames"}, Disabled: []string{"about"}}},
	}
	got := renderString(t, AdminDashboard(testSite, data, "cleared", "tok"))
	for _, want := range []string{"structure/homepage.json", "1m30s", "expired", "hero → popularGames", `value="tok"`, "cache cleared"} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestFormatPlays(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1K"},
		{12345, "12.3K"},
		{4_100_000, "4.1M"},
	}
	for _, tt := range tests {
		if got := FormatPlays(tt.n); got != tt.want {
			t.Errorf("FormatPlays(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestVideoGameJsonLD(t *testing.T) {
	g := content.Game{Slug: "snake", Title: "Snake", Category: "Arcade", Rating: 4.5, Plays: 10, Tags: []string{"retro", "classic"}}
	var data map[string]any
	if err := json.Unmarshal([]byte(VideoGameJsonLD(testSite, g)), &data); err != nil {
		t.Fatal(err)
	}
	if data["@type"] != "VideoGame" {
		t.Errorf("@type = %v", data["@type"])
	}
	if data["url"] != "https://arcade.example/games/snake/" {
		t.Errorf("url = %v", data["url"])
	}
	if data["keywords"] != "retro, classic" {
		t.Errorf("keywords = %v", data["keywords"])
	}
	rating, ok := data["aggregateRating"].(map[string]any)
	if !ok || rating["ratingValue"] != "4.5" {
		t.Errorf("aggregateRating = %v", data["aggregateRating"])
	}
}

func TestBreadcrumbJsonLD(t *testing.T) {
	out := BreadcrumbJsonLD(testSite, []Crumb{{Label: "Home", URL: "/"}, {Label: "Snake"}})
	var data struct {
		Items []map[string]any `json:"itemListElement"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Items) != 2 {
		t.Fatalf("items = %d", len(data.Items))
	}
	if data.Items[0]["item"] != "https://arcade.example/" {
		t.Errorf("first item = %v", data.Items[0]["item"])
	}
	if _, ok := data.Items[1]["item"]; ok {
		t.Error("last crumb should have no item URL")
	}
}

func TestSectionSkipsEmptyBody(t *testing.T) {
	if got := renderString(t, Section("featuredGames", GameGrid("Featured", nil, GridOptions{}))); got != "" {
		t.Fatalf("empty section rendered %q", got)
	}
	got := renderString(t, Section("hero", Hero("Play", "", "", "")))
	if !strings.HasPrefix(got, `<section class="section section-hero" data-section="hero">`) || !strings.HasSuffix(got, "</section>") {
		t.Fatalf("section = %q", got)
	}
}

func TestUnsafeURLsAreSanitized(t *testing.T) {
	site := testSite
	site.Nav = []NavLink{{Label: "Bad", URL: "javascript:alert(1)"}, {Label: "Blog", URL: "/blog/"}}
	out := renderString(t, Page(site, PageMeta{}, Hero("Play", "", "Go", "javascript:alert(2)")))
	if strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe URL rendered: %s", out)
	}
	if !strings.Contains(out, `href="about:invalid#TemplFailedSanitizationURL"`) {
		t.Errorf("sanitized URL missing")
	}
	if !strings.Contains(out, `<a href="/blog/">Blog</a>`) {
		t.Errorf("safe link altered")
	}

	g := content.Game{Slug: "x", Title: "X", EmbedURL: "javascript:alert(3)", Thumbnail: "data:text/html,hi"}
	out = renderString(t, GamePlayer(g, 800, 600)) + renderString(t, GameGrid("", []content.Game{g}, GridOptions{}))
	if strings.Contains(out, "javascript:") || strings.Contains(out, "data:text/html") {
		t.Fatalf("unsafe game URL rendered: %s", out)
	}
}
