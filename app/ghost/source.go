package ghost

import (
	"context"
	"log/slog"

	"github.com/voxummah/newsdesk/app/content"
)

var _ content.RemoteSource = (*Source)(nil)

// Source adapts the Ghost client to the aggregator's remote-source contract,
// mapping raw posts into normalized articles.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) FetchAll(ctx context.Context) ([]content.Article, error) {
	if !s.client.Enabled() {
		slog.Debug("Remote source not configured, skipping fetch")
		return nil, nil
	}

	posts, err := s.client.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]content.Article, 0, len(posts))
	for _, post := range posts {
		// A single malformed post is skipped rather than failing the whole
		// fetch; content availability beats completeness here.
		if post.Id == "" || post.Title == "" {
			slog.Warn("Skipping malformed remote post", "id", post.Id, "slug", post.Slug)
			continue
		}
		articles = append(articles, MapPost(post))
	}

	return articles, nil
}
