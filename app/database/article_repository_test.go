package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/voxummah/newsdesk/app/content"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func testArticle(id, slug string) StoredArticle {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return StoredArticle{
		Article: content.Article{
			Id:          id,
			Title:       "Title " + id,
			Slug:        slug,
			Body:        "Body text long enough to be plausible.",
			Excerpt:     "Excerpt.",
			Category:    "News",
			ContentType: "Article",
			AuthorName:  "Test Author",
			Published:   true,
			Tags:        []string{"news"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func TestArticleRepository_CreateAndGet(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	article := testArticle("a1", "first-article")
	if err := repo.Create(article); err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	got, err := repo.GetBySlug("first-article")
	if err != nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if got == nil {
		t.Fatal("expected article, got nil")
	}
	if got.Id != "a1" || got.Title != "Title a1" {
		t.Errorf("unexpected article: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "news" {
		t.Errorf("expected tags round-trip, got %v", got.Tags)
	}
	if !got.CreatedAt.Equal(article.CreatedAt) {
		t.Errorf("expected created_at round-trip, got %v", got.CreatedAt)
	}

	missing, err := repo.GetBySlug("does-not-exist")
	if err != nil {
		t.Fatalf("expected no error for missing slug, got: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing slug, got %+v", missing)
	}
}

func TestArticleRepository_UpdateAndDelete(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	article := testArticle("a1", "first-article")
	if err := repo.Create(article); err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	article.Title = "Updated Title"
	article.UpdatedAt = article.UpdatedAt.Add(time.Hour)
	if err := repo.Update(article); err != nil {
		t.Fatalf("failed to update article: %v", err)
	}

	got, err := repo.GetById("a1")
	if err != nil || got == nil {
		t.Fatalf("failed to get updated article: %v", err)
	}
	if got.Title != "Updated Title" {
		t.Errorf("expected updated title, got %q", got.Title)
	}

	if err := repo.Delete("a1"); err != nil {
		t.Fatalf("failed to delete article: %v", err)
	}
	if err := repo.Delete("a1"); err == nil {
		t.Error("expected error deleting missing article")
	}
	if err := repo.Update(testArticle("ghost-id", "other")); err == nil {
		t.Error("expected error updating missing article")
	}
}

func TestArticleRepository_SlugExists(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	if err := repo.Create(testArticle("a1", "taken-slug")); err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	exists, err := repo.SlugExists("taken-slug", "")
	if err != nil {
		t.Fatalf("failed to check slug: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}

	exists, err = repo.SlugExists("taken-slug", "a1")
	if err != nil {
		t.Fatalf("failed to check slug with exclusion: %v", err)
	}
	if exists {
		t.Error("expected slug check to ignore the excluded article")
	}

	exists, err = repo.SlugExists("free-slug", "")
	if err != nil {
		t.Fatalf("failed to check free slug: %v", err)
	}
	if exists {
		t.Error("expected free slug to be available")
	}
}

func TestArticleRepository_ListFilters(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	a := testArticle("a1", "news-one")
	b := testArticle("a2", "analysis-one")
	b.Category = "Analysis"
	b.Featured = true
	b.FeaturedPriority = 5
	c := testArticle("a3", "draft-one")
	c.Published = false

	for _, article := range []StoredArticle{a, b, c} {
		if err := repo.Create(article); err != nil {
			t.Fatalf("failed to create article: %v", err)
		}
	}

	published, err := repo.List(ListOptions{PublishedOnly: true})
	if err != nil {
		t.Fatalf("failed to list published: %v", err)
	}
	if len(published) != 2 {
		t.Errorf("expected 2 published articles, got %d", len(published))
	}

	analysis, err := repo.List(ListOptions{Category: "Analysis"})
	if err != nil {
		t.Fatalf("failed to list by category: %v", err)
	}
	if len(analysis) != 1 || analysis[0].Id != "a2" {
		t.Errorf("expected only the Analysis article, got %+v", analysis)
	}

	featured, err := repo.List(ListOptions{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("failed to list featured: %v", err)
	}
	if len(featured) != 1 || featured[0].Id != "a2" {
		t.Errorf("expected only the featured article, got %+v", featured)
	}

	limited, err := repo.List(ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("failed to list with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit to apply, got %d", len(limited))
	}
}

func TestArticleRepository_IncrementViewCount(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	if err := repo.Create(testArticle("a1", "viewed")); err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	if err := repo.IncrementViewCount("a1", "test-agent"); err != nil {
		t.Fatalf("failed to increment view count: %v", err)
	}
	if err := repo.IncrementViewCount("a1", "test-agent"); err != nil {
		t.Fatalf("failed to increment view count: %v", err)
	}

	got, err := repo.GetById("a1")
	if err != nil || got == nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if got.ViewCount != 2 {
		t.Errorf("expected view count 2, got %d", got.ViewCount)
	}
}

func TestArticleRepository_PublishScheduled(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	dueArticle := testArticle("a1", "due")
	dueArticle.Published = false
	dueArticle.ScheduledPublishAt = &due

	futureArticle := testArticle("a2", "future")
	futureArticle.Published = false
	futureArticle.ScheduledPublishAt = &future

	for _, article := range []StoredArticle{dueArticle, futureArticle} {
		if err := repo.Create(article); err != nil {
			t.Fatalf("failed to create article: %v", err)
		}
	}

	published, err := repo.PublishScheduled(now)
	if err != nil {
		t.Fatalf("failed to publish scheduled: %v", err)
	}
	if published != 1 {
		t.Errorf("expected 1 article published, got %d", published)
	}

	got, err := repo.GetById("a1")
	if err != nil || got == nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if !got.Published || got.ScheduledPublishAt != nil {
		t.Errorf("expected due article published with cleared schedule, got %+v", got)
	}

	still, err := repo.GetById("a2")
	if err != nil || still == nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if still.Published {
		t.Error("expected future article to stay unpublished")
	}
}

func TestArticleRepository_UpsertSyndicated(t *testing.T) {
	repo := NewArticleRepository(newTestDB(t))

	article := testArticle("a1", "syndicated-item")
	article.SourceGUID = "https://partner.example.com/item/1"
	if err := repo.UpsertSyndicated(article); err != nil {
		t.Fatalf("failed to upsert syndicated article: %v", err)
	}

	update := article
	update.Id = "ignored-on-conflict"
	update.Title = "Refreshed Title"
	update.UpdatedAt = article.UpdatedAt.Add(time.Hour)
	if err := repo.UpsertSyndicated(update); err != nil {
		t.Fatalf("failed to re-upsert syndicated article: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("failed to count articles: %v", err)
	}
	if count != 1 {
		t.Errorf("expected upsert to keep a single row, got %d", count)
	}

	got, err := repo.GetById("a1")
	if err != nil || got == nil {
		t.Fatalf("failed to get article: %v", err)
	}
	if got.Title != "Refreshed Title" {
		t.Errorf("expected refreshed title, got %q", got.Title)
	}

	bad := testArticle("a2", "no-guid")
	if err := repo.UpsertSyndicated(bad); err == nil {
		t.Error("expected error for syndicated article without GUID")
	}
}
