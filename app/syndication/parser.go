package syndication

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/voxummah/newsdesk/app/cms"
	"github.com/voxummah/newsdesk/app/content"
	"github.com/voxummah/newsdesk/app/database"
)

// Parser turns a raw RSS/Atom document into store-ready articles. Classified
// through the same section catalog as every other source.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses the feed document and maps up to maxItems entries into articles.
// Items without a title or resolvable GUID are skipped.
func (p *Parser) Run(data []byte, source Source) ([]database.StoredArticle, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if source.MaxItems > 0 && len(items) > source.MaxItems {
		items = items[:source.MaxItems]
	}

	articles := make([]database.StoredArticle, 0, len(items))
	for _, item := range items {
		guid := cmp.Or(item.GUID, item.Link)
		if guid == "" || item.Title == "" {
			continue
		}
		articles = append(articles, p.mapItem(item, guid, source))
	}

	return articles, nil
}

func (p *Parser) mapItem(item *gofeed.Item, guid string, source Source) database.StoredArticle {
	body := cmp.Or(item.Content, item.Description)

	article := database.StoredArticle{
		Article: content.Article{
			Id:          guidHash(guid),
			Title:       item.Title,
			Slug:        syndicatedSlug(item.Title, guid),
			Body:        body,
			Excerpt:     content.Excerpt(body, content.DefaultExcerptLength),
			Category:    content.SectionFromTags(item.Categories),
			ContentType: content.DefaultContentType,
			AuthorName:  source.Name,
			Published:   true,
			Tags:        item.Categories,
			CreatedAt:   time.Now().UTC(),
			UpdatedAt:   time.Now().UTC(),
		},
		SourceGUID: guid,
	}

	if item.Author != nil && item.Author.Name != "" {
		article.AuthorName = item.Author.Name
	}
	if item.Image != nil {
		article.ImageURL = item.Image.URL
	}
	if item.PublishedParsed != nil {
		article.CreatedAt = *item.PublishedParsed
		article.UpdatedAt = *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		article.UpdatedAt = *item.UpdatedParsed
	}

	return article
}

// syndicatedSlug appends a short GUID hash so items from different partners
// with identical titles cannot collide on the slug unique index.
func syndicatedSlug(title, guid string) string {
	base := cms.GenerateSlug(title)
	if base == "" {
		return guidHash(guid)[:12]
	}
	return base + "-" + guidHash(guid)[:8]
}

func guidHash(guid string) string {
	hash := sha256.Sum256([]byte(guid))
	return hex.EncodeToString(hash[:])
}
