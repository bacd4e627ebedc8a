package gamesite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/markdown"
)

// Kinds of search entries.
const (
	KindGame = "game"
	KindPost = "post"
	KindPage = "page"
)

const summaryLength = 160

// SearchIndex is a SQLite table of every game, post and static page,
// rebuilt from the catalog at start-up.
type SearchIndex struct {
	db *sql.DB
}

// SearchHit is one ranked search match.
type SearchHit struct {
	Kind    string
	Slug    string
	Title   string
	Summary string
	Score   int
}

// NewSearchIndex opens (or creates) the SQLite database at path, ensures the
// data directory exists and creates the schema. ":memory:" keeps the index
// in process.
func NewSearchIndex(path string) (*SearchIndex, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	} else {
		if _, err := db.Exec(`
			PRAGMA journal_mode=WAL;
			PRAGMA busy_timeout=5000;
			PRAGMA synchronous=NORMAL;
		`); err != nil {
			db.Close()
			return nil, err
		}
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
	}
	s := &SearchIndex{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SearchIndex) Close() error {
	return s.db.Close()
}

func (s *SearchIndex) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS search_entries (
    kind TEXT NOT NULL,
    slug TEXT NOT NULL,
    title TEXT NOT NULL,
    summary TEXT NOT NULL,
    tags TEXT NOT NULL,
    category TEXT NOT NULL,
    PRIMARY KEY (kind, slug)
);
`)
	return err
}

type searchEntry struct {
	kind, slug, title, summary, tags, category string
}

func entriesFor(cat *content.Catalog) []searchEntry {
	var out []searchEntry
	for _, g := range cat.AllGames() {
		out = append(out, searchEntry{
			kind:     KindGame,
			slug:     g.Slug,
			title:    g.Title,
			summary:  g.Description,
			tags:     strings.Join(g.Tags, " "),
			category: g.Category,
		})
	}
	for _, p := range cat.RecentPosts(0) {
		summary := p.Excerpt
		if summary == "" {
			summary = markdown.Excerpt(p.Content, summaryLength)
		}
		out = append(out, searchEntry{
			kind:     KindPost,
			slug:     p.Slug,
			title:    p.Title,
			summary:  summary,
			tags:     strings.Join(p.Tags, " "),
			category: p.Category,
		})
	}
	for _, p := range cat.Pages() {
		summary := p.Description
		if summary == "" {
			summary = markdown.Excerpt(p.Body, summaryLength)
		}
		out = append(out, searchEntry{kind: KindPage, slug: p.Slug, title: p.Title, summary: summary})
	}
	return out
}

// Rebuild replaces the whole index with the catalog's entries in one
// transaction.
func (s *SearchIndex) Rebuild(ctx context.Context, cat *content.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM search_entries`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO search_entries (kind, slug, title, summary, tags, category) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entriesFor(cat) {
		if _, err := stmt.ExecContext(ctx, e.kind, e.slug, e.title, e.summary, e.tags, e.category); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of indexed entries.
func (s *SearchIndex) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM search_entries`).Scan(&n)
	return n, err
}

// Search ranks entries containing query, case-insensitively: a title match
// scores 3, a tag or category match 2 and a summary match 1. Results are
// ordered by score, then title. A blank query matches nothing; limit <= 0
// means no limit.
func (s *SearchIndex) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1
	}
	pattern := "%" + escapeLike(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
SELECT kind, slug, title, summary, score FROM (
    SELECT kind, slug, title, summary,
        (CASE WHEN lower(title) LIKE ?1 ESCAPE '\' THEN 3 ELSE 0 END) +
        (CASE WHEN lower(tags) LIKE ?1 ESCAPE '\' OR lower(category) LIKE ?1 ESCAPE '\' THEN 2 ELSE 0 END) +
        (CASE WHEN lower(summary) LIKE ?1 ESCAPE '\' THEN 1 ELSE 0 END) AS score
    FROM search_entries
)
WHERE score > 0
ORDER BY score DESC, lower(title) ASC, kind ASC, slug ASC
LIMIT ?2`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.Kind, &h.Slug, &h.Title, &h.Summary, &h.Score); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
