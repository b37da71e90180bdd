package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/syndication"
)

// SyndicateFeedTask fetches one partner feed, maps its entries to articles and
// upserts them into the store keyed by source GUID.
type SyndicateFeedTask struct {
	Task
	Source      syndication.Source
	httpClient  *http.Client
	parser      *syndication.Parser
	extractor   *syndication.Extractor
	articleRepo database.ArticleRepository
	userAgent   string
}

func NewSyndicateFeedTask(source syndication.Source, httpClient *http.Client, parser *syndication.Parser,
	extractor *syndication.Extractor, articleRepo database.ArticleRepository, userAgent string) *SyndicateFeedTask {
	return &SyndicateFeedTask{
		Task:        NewTask(TaskTypeSyndicateFeed, source.Name),
		Source:      source,
		httpClient:  httpClient,
		parser:      parser,
		extractor:   extractor,
		articleRepo: articleRepo,
		userAgent:   userAgent,
	}
}

func (t *SyndicateFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := t.fetch(ctx, t.Source.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	articles, err := t.parser.Run(data, t.Source)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	extractedCount := 0
	storedCount := 0

	for _, article := range articles {
		if t.Source.ExtractContent {
			content, ok := t.extractArticle(ctx, article)
			if ok {
				article.Body = content
				extractedCount++
			}
		}

		if err := t.articleRepo.UpsertSyndicated(article); err != nil {
			return fmt.Errorf("failed to upsert article %q: %w", article.SourceGUID, err)
		}
		storedCount++
	}

	slog.Info("Task completed",
		"type", "SyndicateFeed",
		"source", t.Source.Name,
		"duration", t.GetDuration(),
		"total", len(articles),
		"extracted", extractedCount,
		"stored", storedCount)

	return nil
}

// extractArticle replaces the feed teaser with the full page content. Failure
// keeps the teaser, it never fails the task.
func (t *SyndicateFeedTask) extractArticle(ctx context.Context, article database.StoredArticle) (string, bool) {
	data, err := t.fetch(ctx, article.SourceGUID)
	if err != nil {
		slog.Warn("Failed to fetch article page", "source", t.Source.Name, "url", article.SourceGUID, "error", err)
		return "", false
	}

	content, err := t.extractor.Run(data)
	if err != nil {
		slog.Warn("Failed to extract article content", "source", t.Source.Name, "url", article.SourceGUID, "error", err)
		return "", false
	}

	return content, true
}

func (t *SyndicateFeedTask) fetch(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
