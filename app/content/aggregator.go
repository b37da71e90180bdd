package content

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// RemoteSource supplies already-normalized articles from the live content API.
type RemoteSource interface {
	FetchAll(ctx context.Context) ([]Article, error)
}

// Aggregator owns the authoritative article list for the application session.
// It is built once at startup, loads exactly once, and is read-only for every
// consumer afterwards.
type Aggregator struct {
	source   RemoteSource
	fallback []Article

	once     sync.Once
	mu       sync.RWMutex
	articles []Article
	loading  bool
}

func NewAggregator(source RemoteSource, fallback []Article) *Aggregator {
	return &Aggregator{
		source:   source,
		fallback: Dedupe(fallback),
		loading:  true,
	}
}

// Run performs the one-shot aggregation. Concurrent and repeated calls are
// safe; only the first one does work.
func (a *Aggregator) Run(ctx context.Context) {
	a.once.Do(func() {
		a.load(ctx)
	})
}

func (a *Aggregator) load(ctx context.Context) {
	remote, err := a.source.FetchAll(ctx)

	// A failed fetch and a genuinely empty feed collapse into the same
	// fallback path on purpose: readers see the bundled catalog instead of an
	// error page. Do not split these cases without revisiting the
	// editorial-continuity requirement.
	var merged []Article
	switch {
	case err != nil:
		slog.Error("Remote content fetch failed, using fallback catalog", "error", err)
		merged = a.fallback
	case len(remote) == 0:
		slog.Info("Remote source returned no posts, using fallback catalog")
		merged = a.fallback
	default:
		combined := make([]Article, 0, len(remote)+len(a.fallback))
		combined = append(combined, remote...)
		combined = append(combined, a.fallback...)
		merged = Dedupe(combined)
		slog.Info("Content aggregation completed",
			"remote", len(remote),
			"fallback", len(a.fallback),
			"total", len(merged))
	}

	a.mu.Lock()
	a.articles = merged
	a.loading = false
	a.mu.Unlock()
}

// Snapshot returns a copy of the article list and the loading flag. While
// loading is true the list is empty; consumers must render a placeholder
// rather than assume content is present.
func (a *Aggregator) Snapshot() ([]Article, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	articles := make([]Article, len(a.articles))
	copy(articles, a.articles)
	return articles, a.loading
}

// Loading reports whether the initial aggregation is still in flight.
func (a *Aggregator) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// BySlug returns the first article with the given slug.
func (a *Aggregator) BySlug(slug string) (Article, bool) {
	articles, _ := a.Snapshot()
	for _, article := range articles {
		if article.Slug == slug {
			return article, true
		}
	}
	return Article{}, false
}

// ByCategory returns published articles in one canonical section, newest
// first.
func (a *Aggregator) ByCategory(category string) []Article {
	articles, _ := a.Snapshot()
	result := make([]Article, 0)
	for _, article := range articles {
		if article.Published && article.Category == category {
			result = append(result, article)
		}
	}
	sortByRecency(result)
	return result
}

// Featured returns published featured articles ordered by descending
// priority. Priority is only meaningful among featured articles.
func (a *Aggregator) Featured() []Article {
	articles, _ := a.Snapshot()
	result := make([]Article, 0)
	for _, article := range articles {
		if article.Published && article.Featured {
			result = append(result, article)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FeaturedPriority > result[j].FeaturedPriority
	})
	return result
}

// Latest returns up to limit published articles, newest first. A non-positive
// limit returns all of them.
func (a *Aggregator) Latest(limit int) []Article {
	articles, _ := a.Snapshot()
	result := make([]Article, 0)
	for _, article := range articles {
		if article.Published {
			result = append(result, article)
		}
	}
	sortByRecency(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Search performs a case-insensitive substring match over title, excerpt and
// tags of published articles.
func (a *Aggregator) Search(query string) []Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	articles, _ := a.Snapshot()
	result := make([]Article, 0)
	for _, article := range articles {
		if article.Published && matchesQuery(article, query) {
			result = append(result, article)
		}
	}
	sortByRecency(result)
	return result
}

func matchesQuery(article Article, query string) bool {
	if strings.Contains(strings.ToLower(article.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Excerpt), query) {
		return true
	}
	for _, tag := range article.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
}
