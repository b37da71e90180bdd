package ghost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSource_SkipsMalformedPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"posts": [
			{"id": "p1", "title": "Good", "slug": "good"},
			{"id": "", "title": "No id", "slug": "no-id"},
			{"id": "p3", "title": "", "slug": "no-title"}
		]}`))
	}))
	defer server.Close()

	source := NewSource(NewClient(server.Client(), server.URL, "test-key", "Newsdesk/test"))
	articles, err := source.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("expected malformed posts to be skipped, got %d articles", len(articles))
	}
	if articles[0].Id != "p1" {
		t.Errorf("expected surviving article p1, got %q", articles[0].Id)
	}
}

func TestSource_NotConfigured(t *testing.T) {
	source := NewSource(NewClient(http.DefaultClient, "", "", "Newsdesk/test"))

	articles, err := source.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("expected no error when unconfigured, got: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected empty result when unconfigured, got %d", len(articles))
	}
}
