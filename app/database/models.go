package database

import (
	"time"

	"github.com/voxummah/newsdesk/app/content"
)

// StoredArticle is a CMS-authored or syndicated article as persisted in the
// local store. It carries authoring-only fields on top of the normalized
// article shape.
type StoredArticle struct {
	content.Article

	// SourceGUID identifies the syndicated feed item an article came from;
	// empty for articles authored in the CMS.
	SourceGUID string

	// ScheduledPublishAt defers publication to a background task.
	ScheduledPublishAt *time.Time
}

// TagRecord is an authoring tag with usage tracking for autocomplete ordering.
type TagRecord struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}
