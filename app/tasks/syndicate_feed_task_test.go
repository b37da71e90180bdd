package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/syndication"
)

type mockArticleRepo struct {
	upserted  []database.StoredArticle
	published int
	err       error
}

func (m *mockArticleRepo) GetById(id string) (*database.StoredArticle, error) { return nil, nil }
func (m *mockArticleRepo) GetBySlug(slug string) (*database.StoredArticle, error) {
	return nil, nil
}
func (m *mockArticleRepo) List(opts database.ListOptions) ([]database.StoredArticle, error) {
	return nil, nil
}
func (m *mockArticleRepo) Count() (int, error)                         { return 0, nil }
func (m *mockArticleRepo) Create(article database.StoredArticle) error { return nil }
func (m *mockArticleRepo) Update(article database.StoredArticle) error { return nil }
func (m *mockArticleRepo) Delete(id string) error                      { return nil }
func (m *mockArticleRepo) SlugExists(slug, excludeId string) (bool, error) {
	return false, nil
}
func (m *mockArticleRepo) IncrementViewCount(id, userAgent string) error { return nil }

func (m *mockArticleRepo) PublishScheduled(now time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.published, nil
}

func (m *mockArticleRepo) UpsertSyndicated(article database.StoredArticle) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = append(m.upserted, article)
	return nil
}

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Partner Wire</title>
	<item>
		<title>Council Approves Budget</title>
		<link>https://partner.example.com/budget</link>
		<guid>https://partner.example.com/budget</guid>
		<description>The city council approved next year's budget after a lengthy session covering transport, housing and public safety allocations.</description>
		<category>politics</category>
	</item>
</channel>
</rss>`

func TestSyndicateFeedTask_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "newsdesk-test" {
			t.Errorf("Expected configured user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	repo := &mockArticleRepo{}
	source := syndication.Source{Name: "Partner Wire", URL: server.URL, MaxItems: 25}
	task := NewSyndicateFeedTask(source, server.Client(), syndication.NewParser(), syndication.NewExtractor(), repo, "newsdesk-test")

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(repo.upserted) != 1 {
		t.Fatalf("Expected 1 upserted article, got %d", len(repo.upserted))
	}
	if repo.upserted[0].SourceGUID != "https://partner.example.com/budget" {
		t.Errorf("Unexpected source GUID: %q", repo.upserted[0].SourceGUID)
	}
	if repo.upserted[0].Category != "News" {
		t.Errorf("Expected politics item classified as News, got %q", repo.upserted[0].Category)
	}
}

func TestSyndicateFeedTask_Execute_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := syndication.Source{Name: "Broken", URL: server.URL}
	task := NewSyndicateFeedTask(source, server.Client(), syndication.NewParser(), syndication.NewExtractor(), &mockArticleRepo{}, "newsdesk-test")

	if err := task.Execute(context.Background()); err == nil {
		t.Error("Expected error for HTTP 500 response")
	}
}

func TestSyndicateFeedTask_Execute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := syndication.Source{Name: "x", URL: "http://127.0.0.1:0"}
	task := NewSyndicateFeedTask(source, http.DefaultClient, syndication.NewParser(), syndication.NewExtractor(), &mockArticleRepo{}, "newsdesk-test")

	if err := task.Execute(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestPublishScheduledTask_Execute(t *testing.T) {
	repo := &mockArticleRepo{published: 2}
	task := NewPublishScheduledTask(repo)

	if err := task.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
