package gamesite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/eringen/gamesite/content"
)

func setupTestIndex(t *testing.T) *SearchIndex {
	t.Helper()
	s, err := NewSearchIndex(filepath.Join(t.TempDir(), "data", "search.db"))
	if err != nil {
		t.Fatalf("failed to create search index: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cat, err := content.New(
		[]content.Game{
			{Slug: "snake", Title: "Snake", Category: "Arcade", Tags: []string{"retro"}, Description: "Eat apples and grow."},
			{Slug: "apple-catch", Title: "Apple Catch", Category: "Casual", Description: "Catch falling fruit."},
			{Slug: "block-drop", Title: "Block Drop", Category: "Puzzle", Tags: []string{"arcade"}, Description: "Stack blocks."},
		},
		[]content.BlogPost{
			{Slug: "snake-tips", Title: "Snake Tips", Date: "2024-02-01", Content: "Turn early.", Tags: []string{"guides"}},
		},
		nil,
		[]content.Page{{Slug: "about", Title: "About", Body: "We love 100% arcade games."}},
	)
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	if err := s.Rebuild(context.Background(), cat); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	return s
}

func hitSlugs(hits []SearchHit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Kind + ":" + h.Slug
	}
	return out
}

func TestSearchIndexCount(t *testing.T) {
	s := setupTestIndex(t)
	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("Count = %d, want 5", n)
	}
}

func TestSearchRanksTitleOverSummary(t *testing.T) {
	s := setupTestIndex(t)
	hits, err := s.Search(context.Background(), "apple", 0)
	if err != nil {
		t.Fatal(err)
	}
	// Apple Catch matches its title (3); Snake only its description (1).
	if got, want := hitSlugs(hits), []string{"game:apple-catch", "game:snake"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(apple) = %v, want %v", got, want)
	}
	if hits[0].Score != 3 || hits[1].Score != 1 {
		t.Fatalf("scores = %d, %d", hits[0].Score, hits[1].Score)
	}
}

func TestSearchTiesOrderedByTitle(t *testing.T) {
	s := setupTestIndex(t)
	hits, err := s.Search(context.Background(), "SNAKE", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hitSlugs(hits), []string{"game:snake", "post:snake-tips"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(SNAKE) = %v, want %v", got, want)
	}
}

func TestSearchCategoryAndTagMatches(t *testing.T) {
	s := setupTestIndex(t)
	hits, err := s.Search(context.Background(), "arcade", 0)
	if err != nil {
		t.Fatal(err)
	}
	// Both games score 2 (category or tag); the page matches its summary.
	if got, want := hitSlugs(hits), []string{"game:block-drop", "game:snake", "page:about"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(arcade) = %v, want %v", got, want)
	}
}

func TestSearchLimitAndBlank(t *testing.T) {
	s := setupTestIndex(t)
	hits, err := s.Search(context.Background(), "arcade", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 {
		t.Fatalf("len = %d, want 1", len(hits))
	}
	hits, err = s.Search(context.Background(), "   ", 10)
	if err != nil || hits != nil {
		t.Fatalf("blank query = %v, %v", hits, err)
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	s := setupTestIndex(t)
	hits, err := s.Search(context.Background(), "100%", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hitSlugs(hits), []string{"page:about"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(100%%) = %v, want %v", got, want)
	}
	hits, err = s.Search(context.Background(), "_", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Fatalf("Search(_) = %v, want none", hitSlugs(hits))
	}
}

func TestSearchRebuildReplacesEntries(t *testing.T) {
	s := setupTestIndex(t)
	cat, err := content.New([]content.Game{{Slug: "pong", Title: "Pong"}}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Rebuild(context.Background(), cat); err != nil {
		t.Fatal(err)
	}
	n, _ := s.Count(context.Background())
	if n != 1 {
		t.Fatalf("Count after rebuild = %d, want 1", n)
	}
}

func TestSearchInMemory(t *testing.T) {
	s, err := NewSearchIndex(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	n, err := s.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}
