package content

import (
	"time"
)

// Defaults applied when a source does not carry the field. Named here so the
// mapping code never falls back inline.
const (
	DefaultAuthorName  = "Voxummah"
	DefaultContentType = "Article"

	// FeaturedPriority assigned to remote posts flagged as featured; the
	// remote source carries no numeric priority of its own.
	RemoteFeaturedPriority = 10
)

// Article is the normalized record exposed to every consumer, regardless of
// which source (remote, fallback catalog, CMS store, syndication) produced it.
type Article struct {
	Id               string    `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	Slug             string    `json:"slug" yaml:"slug"`
	Body             string    `json:"body" yaml:"body"`
	Excerpt          string    `json:"excerpt" yaml:"excerpt"`
	ImageURL         string    `json:"image_url" yaml:"image_url"`
	Category         string    `json:"category" yaml:"category"`
	ContentType      string    `json:"content_type" yaml:"content_type"`
	AuthorName       string    `json:"author_name" yaml:"author_name"`
	Published        bool      `json:"published" yaml:"published"`
	Featured         bool      `json:"featured" yaml:"featured"`
	FeaturedPriority int       `json:"featured_priority" yaml:"featured_priority"`
	ViewCount        int       `json:"view_count" yaml:"view_count"`
	Tags             []string  `json:"tags" yaml:"tags"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"updated_at"`
}
