package cms

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	MaxTitleLength = 150
	MinBodyLength  = 100
)

// Draft is the authoring input for creating or updating an article.
type Draft struct {
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Body               string     `json:"body"`
	Excerpt            string     `json:"excerpt"`
	ImageURL           string     `json:"image_url"`
	Category           string     `json:"category"`
	ContentType        string     `json:"content_type"`
	AuthorName         string     `json:"author_name"`
	Published          bool       `json:"published"`
	Featured           bool       `json:"featured"`
	FeaturedPriority   int        `json:"featured_priority"`
	Tags               []string   `json:"tags"`
	ScheduledPublishAt *time.Time `json:"scheduled_publish_at"`
}

// ValidationErrors maps field names to human-readable problems.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// ValidateDraft checks the authoring rules; returns nil when the draft is
// acceptable.
func ValidateDraft(draft Draft) ValidationErrors {
	errors := ValidationErrors{}

	if draft.Title == "" {
		errors["title"] = "title is required"
	} else if len(draft.Title) > MaxTitleLength {
		errors["title"] = fmt.Sprintf("title must be %d characters or less", MaxTitleLength)
	}

	if len(draft.Body) < MinBodyLength {
		errors["body"] = fmt.Sprintf("body must be at least %d characters (current: %d)", MinBodyLength, len(draft.Body))
	}

	if draft.ImageURL != "" && !strings.HasPrefix(draft.ImageURL, "http://") && !strings.HasPrefix(draft.ImageURL, "https://") {
		errors["image_url"] = "image URL must start with http:// or https://"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}
