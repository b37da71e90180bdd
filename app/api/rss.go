package api

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/voxummah/newsdesk/app/cfg"
	"github.com/voxummah/newsdesk/app/content"
)

// Generator renders the aggregated article list as an RSS 2.0 document.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(title, section string, articles []content.Article) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	baseURL := g.baseURL()

	g.writeElement(&buf, "title", title, 4)
	g.writeElement(&buf, "link", baseURL, 4)
	description := "Aggregated news articles"
	if section != "" {
		description = fmt.Sprintf("Aggregated news articles from the %s section", section)
	}
	g.writeElement(&buf, "description", description, 4)

	selfLink := baseURL + "/rss"
	if section != "" {
		selfLink += "/" + section
	}
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now().In(time.Local)
	if len(articles) > 0 {
		lastBuildDate = articles[0].CreatedAt
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("Newsdesk/%s", cfg.Get().Version), 4)

	for _, article := range articles {
		g.writeItem(&buf, baseURL, article)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, baseURL string, article content.Article) {
	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(article.Id))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", article.Title, 6)
	g.writeElement(buf, "link", baseURL+"/articles/"+article.Slug, 6)
	g.writeElement(buf, "description", article.Excerpt, 6)

	if article.Body != "" && article.Body != article.Excerpt {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(article.Body)
		buf.WriteString("]]></content:encoded>\n")
	}

	g.writeElement(buf, "pubDate", article.CreatedAt.Format(time.RFC1123Z), 6)
	g.writeElement(buf, "author", article.AuthorName, 6)
	g.writeElement(buf, "category", article.Category, 6)

	for _, tag := range article.Tags {
		if tag != "" && tag != article.Category {
			g.writeElement(buf, "category", tag, 6)
		}
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) baseURL() string {
	if cfg.Get().BaseUrl != "" {
		return cfg.Get().BaseUrl
	}
	return "http://localhost:" + cfg.Get().Port
}
