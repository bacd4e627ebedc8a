package content

import (
	"sort"
)

// AllGames returns every game in declaration order.
func (c *Catalog) AllGames() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

// Game returns the game with the given slug.
func (c *Catalog) Game(slug string) (Game, error) {
	i, ok := c.gameIndex[slug]
	if !ok {
		return Game{}, ErrNotFound
	}
	return c.games[i], nil
}

// sortedGames returns a sorted copy of the catalog's games cut to limit.
// Ties fall back to slug order.
func (c *Catalog) sortedGames(limit int, keep func(Game) bool, less func(a, b Game) bool) []Game {
	out := make([]Game, 0, len(c.games))
	for _, g := range c.games {
		if keep == nil || keep(g) {
			out = append(out, g)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if less(out[i], out[j]) {
				return true
			}
			if less(out[j], out[i]) {
				return false
			}
			return out[i].Slug < out[j].Slug
		})
	}
	return out[:limitOf(len(out), limit)]
}

func byPlays(a, b Game) bool   { return a.Plays > b.Plays }
func byRating(a, b Game) bool  { return a.Rating > b.Rating }
func byAddedAt(a, b Game) bool { return a.AddedAt > b.AddedAt }

// PopularGames returns the most played games.
func (c *Catalog) PopularGames(limit int) []Game {
	return c.sortedGames(limit, nil, byPlays)
}

// TopRatedGames returns the highest rated games.
func (c *Catalog) TopRatedGames(limit int) []Game {
	return c.sortedGames(limit, nil, byRating)
}

// NewGames returns the most recently added games.
func (c *Catalog) NewGames(limit int) []Game {
	return c.sortedGames(limit, nil, byAddedAt)
}

// FeaturedGames returns games flagged as featured, most played first.
func (c *Catalog) FeaturedGames(limit int) []Game {
	return c.sortedGames(limit, func(g Game) bool { return g.Featured }, byPlays)
}

// GamesByCategory returns the games in the category with the given slug in
// declaration order. A limit of zero or less returns all of them.
func (c *Catalog) GamesByCategory(slug string, limit int) []Game {
	return c.sortedGames(limit, func(g Game) bool { return g.CategorySlug() == slug }, nil)
}

// SortGames orders games in place by one of "popular", "rating", "new" or
// "title". Unknown keys leave the slice untouched.
func SortGames(games []Game, key string) {
	var less func(a, b Game) bool
	switch key {
	case "popular":
		less = byPlays
	case "rating":
		less = byRating
	case "new":
		less = byAddedAt
	case "title":
		less = func(a, b Game) bool { return a.Title < b.Title }
	default:
		return
	}
	sort.SliceStable(games, func(i, j int) bool { return less(games[i], games[j]) })
}

// Scoring weights for related content.
const (
	sameCategoryScore = 10
	sharedTagScore    = 3
)

func relatedScore(category string, tags map[string]struct{}, otherCategory string, otherTags []string) int {
	score := 0
	if category != "" && Slugify(otherCategory) == category {
		score += sameCategoryScore
	}
	for t := range tagSet(otherTags) {
		if _, ok := tags[t]; ok {
			score += sharedTagScore
		}
	}
	return score
}

type scoredGame struct {
	game  Game
	score int
}

func rankGames(candidates []scoredGame, limit int) []Game {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].game.Slug < candidates[j].game.Slug
	})
	candidates = candidates[:atMost(len(candidates), limit)]
	out := make([]Game, len(candidates))
	for i, sg := range candidates {
		out[i] = sg.game
	}
	return out
}

// RelatedGames scores every other game against g: 10 points for the same
// category and 3 per shared tag. Games scoring zero are dropped; the rest are
// returned best first, ties by slug, at most limit of them.
func (c *Catalog) RelatedGames(g Game, limit int) []Game {
	cat := g.CategorySlug()
	tags := tagSet(g.Tags)
	var candidates []scoredGame
	for _, other := range c.games {
		if other.Slug == g.Slug {
			continue
		}
		if s := relatedScore(cat, tags, other.Category, other.Tags); s > 0 {
			candidates = append(candidates, scoredGame{game: other, score: s})
		}
	}
	return rankGames(candidates, limit)
}

// GamesForPost returns games related to a blog post by category and tags.
func (c *Catalog) GamesForPost(p BlogPost, limit int) []Game {
	cat := Slugify(p.Category)
	tags := tagSet(p.Tags)
	var candidates []scoredGame
	for _, g := range c.games {
		s := relatedScore(cat, tags, g.Category, g.Tags)
		if _, ok := tags[normalizeTag(g.Slug)]; ok {
			s += sharedTagScore
		}
		if s > 0 {
			candidates = append(candidates, scoredGame{game: g, score: s})
		}
	}
	return rankGames(candidates, limit)
}
