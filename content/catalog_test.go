package content

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func slugs(games []Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Slug
	}
	return out
}

func postSlugs(posts []BlogPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func mustCatalog(t *testing.T, games []Game, posts []BlogPost) *Catalog {
	t.Helper()
	c, err := New(games, posts, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRelatedGamesExample(t *testing.T) {
	a := Game{Slug: "a", Category: "Puzzle", Tags: []string{"logic", "brain"}}
	c := mustCatalog(t, []Game{
		a,
		{Slug: "b", Category: "Puzzle"},
		{Slug: "c", Category: "Arcade", Tags: []string{"logic"}},
		{Slug: "d", Category: "Racing", Tags: []string{"cars"}},
	}, nil)

	got := slugs(c.RelatedGames(a, 10))
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RelatedGames = %v, want %v", got, want)
	}
}

func TestRelatedGamesProperties(t *testing.T) {
	g := Game{Slug: "self", Category: "Action", Tags: []string{"Shooter", "retro"}}
	c := mustCatalog(t, []Game{
		g,
		{Slug: "z-tag", Category: "Sports", Tags: []string{"shooter"}},
		{Slug: "a-tag", Category: "Sports", Tags: []string{"RETRO", "retro"}},
		{Slug: "both", Category: "action", Tags: []string{"retro"}},
		{Slug: "cat", Category: "Action"},
		{Slug: "none", Category: "Puzzle"},
	}, nil)

	all := c.RelatedGames(g, 10)
	if got, want := slugs(all), []string{"both", "cat", "a-tag", "z-tag"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("RelatedGames = %v, want %v", got, want)
	}
	for _, r := range all {
		if r.Slug == g.Slug {
			t.Errorf("result contains the game itself")
		}
	}
	for _, limit := range []int{2, 0, -1} {
		if got := c.RelatedGames(g, limit); len(got) > max(limit, 0) {
			t.Errorf("RelatedGames(g, %d) returned %d games", limit, len(got))
		}
	}
}

func TestPopularAndNewGames(t *testing.T) {
	c := mustCatalog(t, []Game{
		{Slug: "low", Plays: 1, AddedAt: "2024-03-01", Rating: 4.9},
		{Slug: "high", Plays: 100, AddedAt: "2023-01-01", Rating: 3.0},
		{Slug: "mid-b", Plays: 50, AddedAt: "2024-01-01", Rating: 4.0},
		{Slug: "mid-a", Plays: 50, AddedAt: "2024-02-01", Rating: 4.0, Featured: true},
	}, nil)

	if got, want := slugs(c.PopularGames(3)), []string{"high", "mid-a", "mid-b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PopularGames = %v, want %v", got, want)
	}
	if got, want := slugs(c.NewGames(2)), []string{"low", "mid-a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NewGames = %v, want %v", got, want)
	}
	if got, want := slugs(c.TopRatedGames(0)), []string{"low", "mid-a", "mid-b", "high"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TopRatedGames = %v, want %v", got, want)
	}
	if got, want := slugs(c.FeaturedGames(5)), []string{"mid-a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FeaturedGames = %v, want %v", got, want)
	}
}

func TestGamesByCategory(t *testing.T) {
	c := mustCatalog(t, []Game{
		{Slug: "p1", Category: "Word Games"},
		{Slug: "a1", Category: "Arcade"},
		{Slug: "p2", Category: "word games"},
		{Slug: "p3", Category: "Word Games"},
	}, nil)
	if got, want := slugs(c.GamesByCategory("word-games", 0)), []string{"p1", "p2", "p3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("GamesByCategory = %v, want %v", got, want)
	}
	if got := c.GamesByCategory("word-games", 2); len(got) != 2 {
		t.Errorf("limited len = %d", len(got))
	}
	if got := c.GamesByCategory("nope", 0); len(got) != 0 {
		t.Errorf("unknown category returned %v", slugs(got))
	}
}

func TestDerivedCategories(t *testing.T) {
	c, err := New(
		[]Game{{Slug: "a", Category: "word games"}, {Slug: "b", Category: "Arcade"}, {Slug: "c", Category: "Arcade"}},
		nil,
		[]Category{{Slug: "arcade", Name: "Arcade Classics"}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	cats := c.Categories()
	if len(cats) != 2 {
		t.Fatalf("categories = %+v", cats)
	}
	if cats[0].Slug != "arcade" || cats[0].Name != "Arcade Classics" || cats[0].Games != 2 {
		t.Errorf("declared category = %+v", cats[0])
	}
	if cats[1].Slug != "word-games" || cats[1].Name != "Word Games" || cats[1].Games != 1 {
		t.Errorf("derived category = %+v", cats[1])
	}
	if _, err := c.Category("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Category(missing) err = %v", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	c := mustCatalog(t, nil, nil)
	if _, err := c.Game("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Game err = %v", err)
	}
	if _, err := c.Post("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Post err = %v", err)
	}
	if _, err := c.Page("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Page err = %v", err)
	}
}

func TestDuplicateSlugRejected(t *testing.T) {
	_, err := New([]Game{{Slug: "x"}, {Title: "X"}}, nil, nil, nil)
	if err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestPostsAccessors(t *testing.T) {
	c := mustCatalog(t, []Game{
		{Slug: "tetris", Category: "Puzzle", Tags: []string{"blocks"}},
		{Slug: "pong", Category: "Arcade"},
	}, []BlogPost{
		{Slug: "old", Date: "2023-01-01", Category: "Guides", Tags: []string{"puzzle", "blocks"}},
		{Slug: "new", Date: "2024-05-01", Category: "News", Tags: []string{"tetris"}, Featured: true},
		{Slug: "mid", Date: "2024-01-01", Category: "Guides", Tags: []string{"Blocks"}},
	})

	if got, want := postSlugs(c.RecentPosts(0)), []string{"new", "mid", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RecentPosts = %v, want %v", got, want)
	}
	if got, want := postSlugs(c.FeaturedPosts(0)), []string{"new"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FeaturedPosts = %v, want %v", got, want)
	}
	if got, want := postSlugs(c.PostsByCategory("guides", 0)), []string{"mid", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PostsByCategory = %v, want %v", got, want)
	}
	if got, want := postSlugs(c.PostsByTag("BLOCKS", 0)), []string{"mid", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PostsByTag = %v, want %v", got, want)
	}
	old, _ := c.Post("old")
	if got, want := postSlugs(c.RelatedPosts(old, 5)), []string{"mid"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RelatedPosts = %v, want %v", got, want)
	}
	newPost, _ := c.Post("new")
	if got, want := slugs(c.GamesForPost(newPost, 5)), []string{"tetris"}; !reflect.DeepEqual(got, want) {
		t.Errorf("GamesForPost = %v, want %v", got, want)
	}
	tetris, _ := c.Game("tetris")
	if got, want := postSlugs(c.PostsForGame(tetris, 5)), []string{"mid", "new", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PostsForGame = %v, want %v", got, want)
	}
	tags := c.PostTags()
	if len(tags) == 0 || tags[0].Tag != "blocks" || tags[0].Count != 2 {
		t.Errorf("PostTags = %+v", tags)
	}
	if newPost.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want 1", newPost.ReadingTime)
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		GamesFile: {Data: []byte(`[
			{"slug": "snake", "title": "Snake", "category": "Arcade", "tags": ["retro"], "plays": 10},
			{"title": "Block Drop", "category": "Puzzle"}
		]`)},
		PostsFile: {Data: []byte(`[{"slug": "hello", "title": "Hello", "date": "2024-01-01", "content": "hi there"}]`)},
		"pages/about.md": {Data: []byte("---\ntitle: About Us\ndescription: Who we are\n---\n# About\n\nWe make games.\n")},
		"pages/terms.md": {Data: []byte("Plain terms without front matter.\n")},
	}
	c, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	games, posts, cats, pages := c.Counts()
	if games != 2 || posts != 1 || cats != 2 || pages != 2 {
		t.Fatalf("counts = %d %d %d %d", games, posts, cats, pages)
	}
	if _, err := c.Game("block-drop"); err != nil {
		t.Errorf("slug derived from title: %v", err)
	}
	about, err := c.Page("about")
	if err != nil {
		t.Fatalf("Page(about): %v", err)
	}
	if about.Title != "About Us" || about.Description != "Who we are" {
		t.Errorf("about = %+v", about)
	}
	if !strings.HasPrefix(about.Body, "# About") || strings.Contains(about.Body, "title:") {
		t.Errorf("about body = %q", about.Body)
	}
	terms, _ := c.Page("terms")
	if terms.Title != "Terms" {
		t.Errorf("terms title = %q", terms.Title)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(fstest.MapFS{GamesFile: {Data: []byte(`{"not": "an array"}`)}})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello World", "hello-world"},
		{"  Word Games! ", "word-games"},
		{"2048", "2048"},
		{"益智", "益智"},
		{"Café Racer", "café-racer"},
		{"--!!--", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRelatedContentZeroLimit(t *testing.T) {
	c := mustCatalog(t, []Game{
		{Slug: "tetris", Category: "Puzzle", Tags: []string{"blocks"}},
		{Slug: "columns", Category: "Puzzle", Tags: []string{"blocks"}},
	}, []BlogPost{
		{Slug: "a", Category: "Puzzle", Tags: []string{"blocks", "tetris"}},
		{Slug: "b", Category: "Puzzle", Tags: []string{"blocks"}},
	})
	tetris, _ := c.Game("tetris")
	post, _ := c.Post("a")

	for _, limit := range []int{0, -3} {
		if got := c.RelatedGames(tetris, limit); len(got) != 0 {
			t.Errorf("RelatedGames limit %d = %v", limit, slugs(got))
		}
		if got := c.GamesForPost(post, limit); len(got) != 0 {
			t.Errorf("GamesForPost limit %d = %v", limit, slugs(got))
		}
		if got := c.RelatedPosts(post, limit); len(got) != 0 {
			t.Errorf("RelatedPosts limit %d = %v", limit, postSlugs(got))
		}
		if got := c.PostsForGame(tetris, limit); len(got) != 0 {
			t.Errorf("PostsForGame limit %d = %v", limit, postSlugs(got))
		}
	}
	if got := c.RelatedGames(tetris, 1); len(got) != 1 {
		t.Errorf("RelatedGames limit 1 = %v", slugs(got))
	}
}

func TestNonASCIICategory(t *testing.T) {
	c := mustCatalog(t, []Game{
		{Slug: "sudoku", Category: "益智"},
		{Slug: "kakuro", Category: "益智"},
	}, nil)
	cat, err := c.Category("益智")
	if err != nil {
		t.Fatalf("derived category missing: %v", err)
	}
	if cat.Name != "益智" {
		t.Errorf("Name = %q", cat.Name)
	}
	if got := slugs(c.GamesByCategory("益智", 0)); len(got) != 2 {
		t.Errorf("GamesByCategory = %v", got)
	}
	sudoku, _ := c.Game("sudoku")
	if got, want := slugs(c.RelatedGames(sudoku, 5)), []string{"kakuro"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RelatedGames = %v, want %v", got, want)
	}
}
