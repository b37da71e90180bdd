package ghost

import (
	"testing"
	"time"

	"github.com/voxummah/newsdesk/app/content"
)

func TestMapPost_FeaturedBreakingPost(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := Post{
		Id:          "r1",
		Title:       "Breaking News",
		Slug:        "breaking-news",
		HTML:        "<p>Something happened.</p>",
		Featured:    true,
		Tags:        []Tag{{Name: "breaking"}},
		CreatedAt:   published.Add(-time.Hour),
		UpdatedAt:   published,
		PublishedAt: &published,
	}

	article := MapPost(post)

	if article.Category != "News" {
		t.Errorf("expected 'breaking' tag to classify as News, got %q", article.Category)
	}
	if !article.Featured || article.FeaturedPriority != content.RemoteFeaturedPriority {
		t.Errorf("expected featured with priority %d, got %+v", content.RemoteFeaturedPriority, article)
	}
	if !article.Published {
		t.Error("remote posts are published by definition")
	}
	if article.ViewCount != 0 {
		t.Errorf("expected zero view count for remote content, got %d", article.ViewCount)
	}
	if !article.CreatedAt.Equal(published) {
		t.Errorf("expected created_at to prefer published_at, got %v", article.CreatedAt)
	}
	if len(article.Tags) != 1 || article.Tags[0] != "breaking" {
		t.Errorf("expected original tags preserved, got %v", article.Tags)
	}
}

func TestMapPost_Defaults(t *testing.T) {
	post := Post{
		Id:    "r2",
		Title: "Untagged Post",
		Slug:  "untagged-post",
		HTML:  "<p>A body long enough to produce a derived excerpt.</p>",
	}

	article := MapPost(post)

	if article.Category != content.DefaultSection {
		t.Errorf("expected default section for untagged post, got %q", article.Category)
	}
	if article.AuthorName != content.DefaultAuthorName {
		t.Errorf("expected default author, got %q", article.AuthorName)
	}
	if article.Featured || article.FeaturedPriority != 0 {
		t.Errorf("expected non-featured with zero priority, got %+v", article)
	}
	if article.Excerpt == "" {
		t.Error("expected excerpt derived from body")
	}
	if article.Excerpt != "A body long enough to produce a derived excerpt." {
		t.Errorf("unexpected derived excerpt: %q", article.Excerpt)
	}
}

func TestMapPost_AuthorAndExcerptFromWire(t *testing.T) {
	post := Post{
		Id:            "r3",
		Title:         "Opinion Piece",
		Slug:          "opinion-piece",
		Excerpt:       "Wire excerpt.",
		Tags:          []Tag{{Name: "Opinion"}},
		PrimaryAuthor: &Author{Name: "Sam Okafor"},
	}

	article := MapPost(post)

	if article.AuthorName != "Sam Okafor" {
		t.Errorf("expected wire author, got %q", article.AuthorName)
	}
	if article.Excerpt != "Wire excerpt." {
		t.Errorf("expected wire excerpt kept, got %q", article.Excerpt)
	}
	if article.Category != "Voices" {
		t.Errorf("expected 'Opinion' tag to classify as Voices, got %q", article.Category)
	}
}
