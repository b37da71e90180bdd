package ghost

import (
	"time"
)

// Post mirrors the Ghost Content API wire shape for a post with tags and
// authors included.
type Post struct {
	Id            string     `json:"id"`
	UUID          string     `json:"uuid"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	HTML          string     `json:"html"`
	Excerpt       string     `json:"excerpt"`
	FeatureImage  string     `json:"feature_image"`
	Featured      bool       `json:"featured"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at"`
	ReadingTime   int        `json:"reading_time"`
	PrimaryTag    *Tag       `json:"primary_tag"`
	Tags          []Tag      `json:"tags"`
	PrimaryAuthor *Author    `json:"primary_author"`
}

type Tag struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Author struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProfileImage string `json:"profile_image"`
	Bio          string `json:"bio"`
}

type postsResponse struct {
	Posts []Post `json:"posts"`
	Meta  *struct {
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Pages int `json:"pages"`
			Total int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}
