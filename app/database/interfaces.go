package database

import (
	"time"
)

// ListOptions narrows article listings. Zero value lists everything.
type ListOptions struct {
	Category      string
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int
}

type ArticleRepository interface {
	GetById(id string) (*StoredArticle, error)
	GetBySlug(slug string) (*StoredArticle, error)
	List(opts ListOptions) ([]StoredArticle, error)
	Count() (int, error)

	Create(article StoredArticle) error
	Update(article StoredArticle) error
	Delete(id string) error

	SlugExists(slug, excludeId string) (bool, error)
	IncrementViewCount(id, userAgent string) error

	// PublishScheduled flips published on articles whose scheduled time has
	// passed and returns how many were published.
	PublishScheduled(now time.Time) (int, error)

	// UpsertSyndicated inserts or refreshes an article keyed by its source
	// feed GUID.
	UpsertSyndicated(article StoredArticle) error
}

type TagRepository interface {
	GetOrCreate(name, slug string) (*TagRecord, error)
	Search(query string, limit int) ([]TagRecord, error)
	IncrementUsage(slug string) error
	Count() (int, error)
}
