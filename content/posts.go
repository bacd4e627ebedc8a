package content

import "sort"

// Post returns the blog post with the given slug.
func (c *Catalog) Post(slug string) (BlogPost, error) {
	i, ok := c.postIndex[slug]
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	return c.posts[i], nil
}

func (c *Catalog) sortedPosts(limit int, keep func(BlogPost) bool) []BlogPost {
	out := make([]BlogPost, 0, len(c.posts))
	for _, p := range c.posts {
		if keep == nil || keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Slug < out[j].Slug
	})
	return out[:limitOf(len(out), limit)]
}

// RecentPosts returns posts newest first.
func (c *Catalog) RecentPosts(limit int) []BlogPost {
	return c.sortedPosts(limit, nil)
}

// FeaturedPosts returns featured posts newest first.
func (c *Catalog) FeaturedPosts(limit int) []BlogPost {
	return c.sortedPosts(limit, func(p BlogPost) bool { return p.Featured })
}

// PostsByCategory returns posts whose category slugifies to category.
func (c *Catalog) PostsByCategory(category string, limit int) []BlogPost {
	slug := Slugify(category)
	return c.sortedPosts(limit, func(p BlogPost) bool { return Slugify(p.Category) == slug })
}

// PostsByTag returns posts carrying tag, case-insensitively.
func (c *Catalog) PostsByTag(tag string, limit int) []BlogPost {
	want := normalizeTag(tag)
	return c.sortedPosts(limit, func(p BlogPost) bool {
		_, ok := tagSet(p.Tags)[want]
		return ok
	})
}

type scoredPost struct {
	post  BlogPost
	score int
}

func rankPosts(candidates []scoredPost, limit int) []BlogPost {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].post.Slug < candidates[j].post.Slug
	})
	candidates = candidates[:atMost(len(candidates), limit)]
	out := make([]BlogPost, len(candidates))
	for i, sp := range candidates {
		out[i] = sp.post
	}
	return out
}

// RelatedPosts scores other posts against p the same way RelatedGames does.
func (c *Catalog) RelatedPosts(p BlogPost, limit int) []BlogPost {
	cat := Slugify(p.Category)
	tags := tagSet(p.Tags)
	var candidates []scoredPost
	for _, other := range c.posts {
		if other.Slug == p.Slug {
			continue
		}
		if s := relatedScore(cat, tags, other.Category, other.Tags); s > 0 {
			candidates = append(candidates, scoredPost{post: other, score: s})
		}
	}
	return rankPosts(candidates, limit)
}

// PostsForGame is the inverse of GamesForPost: posts sharing the game's
// category or tags, plus posts tagged with the game's slug.
func (c *Catalog) PostsForGame(g Game, limit int) []BlogPost {
	cat := g.CategorySlug()
	tags := tagSet(g.Tags)
	slug := normalizeTag(g.Slug)
	var candidates []scoredPost
	for _, p := range c.posts {
		s := relatedScore(cat, tags, p.Category, p.Tags)
		if _, ok := tagSet(p.Tags)[slug]; ok {
			s += sharedTagScore
		}
		if s > 0 {
			candidates = append(candidates, scoredPost{post: p, score: s})
		}
	}
	return rankPosts(candidates, limit)
}

// PostTags returns every post tag with its usage count, most used first.
func (c *Catalog) PostTags() []TagCount {
	counts := make(map[string]int)
	for _, p := range c.posts {
		for t := range tagSet(p.Tags) {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
