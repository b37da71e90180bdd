package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voxummah/newsdesk/app/cms"
	"github.com/voxummah/newsdesk/app/content"
	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/ghost"
	"github.com/voxummah/newsdesk/app/syndication"
	"github.com/voxummah/newsdesk/app/tasks"
)

func NewHandler(aggregator *content.Aggregator, ghostClient *ghost.Client,
	articleRepo database.ArticleRepository, tagRepo database.TagRepository,
	cmsService *cms.Service, scheduler tasks.TaskSchedulerInterface,
	sources []syndication.Source, httpClient *http.Client, userAgent string) *Handler {
	return &Handler{
		aggregator:  aggregator,
		ghostClient: ghostClient,
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		cmsService:  cmsService,
		scheduler:   scheduler,
		generator:   NewGenerator(),
		sources:     sources,
		httpClient:  httpClient,
		parser:      syndication.NewParser(),
		extractor:   syndication.NewExtractor(),
		userAgent:   userAgent,
	}
}

// ListArticles serves the aggregated article list. The loading flag tells
// clients the initial aggregation has not finished yet; an empty list while
// loading is a placeholder state, not an empty site.
func (h *Handler) ListArticles(c *gin.Context) {
	var articles []content.Article

	switch {
	case c.Query("q") != "":
		articles = h.aggregator.Search(c.Query("q"))
	case c.Query("featured") == "true":
		articles = h.aggregator.Featured()
	case c.Query("category") != "":
		articles = h.aggregator.ByCategory(c.Query("category"))
	default:
		articles = h.aggregator.Latest(0)
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		if limit > 0 && len(articles) > limit {
			articles = articles[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
		"loading":  h.aggregator.Loading(),
	})
}

// GetArticleBySlug resolves a slug against the aggregated list first, then the
// live remote source, then the editorial store.
func (h *Handler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug parameter"})
		return
	}

	if article, ok := h.aggregator.BySlug(slug); ok {
		c.JSON(http.StatusOK, article)
		return
	}

	if h.ghostClient.Enabled() {
		post, err := h.ghostClient.FetchBySlug(c.Request.Context(), slug)
		if err != nil {
			slog.Warn("Remote slug lookup failed", "slug", slug, "error", err)
		} else if post != nil {
			c.JSON(http.StatusOK, ghost.MapPost(*post))
			return
		}
	}

	stored, err := h.articleRepo.GetBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_slug", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if stored != nil && stored.Published {
		c.JSON(http.StatusOK, stored.Article)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
}

// RecordArticleView bumps the stored view counter. Articles that only exist in
// the aggregated list have no persistent counter; the request still succeeds.
func (h *Handler) RecordArticleView(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug parameter"})
		return
	}

	stored, err := h.articleRepo.GetBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_slug", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if stored != nil {
		h.cmsService.RecordView(stored.Id, c.Request.UserAgent())
		c.Status(http.StatusNoContent)
		return
	}

	if _, ok := h.aggregator.BySlug(slug); ok {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
}

// ListSections returns the canonical section catalog in its fixed order.
func (h *Handler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": content.Sections,
		"default":  content.DefaultSection,
	})
}

func (h *Handler) GetRSS(c *gin.Context) {
	section := c.Param("section")

	var articles []content.Article
	title := "Newsdesk"
	if section != "" {
		if content.SectionById(section) == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown section"})
			return
		}
		articles = h.aggregator.ByCategory(section)
		title = title + " - " + section
	} else {
		articles = h.aggregator.Latest(0)
	}

	rss, err := h.generator.Run(title, section, articles)
	if err != nil {
		slog.Error("RSS generation error", "section", section, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(articles)))
	c.String(http.StatusOK, rss)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"loading":   h.aggregator.Loading(),
	}

	if storedCount, err := h.articleRepo.Count(); err == nil {
		health["stored_articles"] = storedCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	articles, loading := h.aggregator.Snapshot()

	perSection := make(map[string]int)
	featured := 0
	for _, article := range articles {
		perSection[article.Category]++
		if article.Featured {
			featured++
		}
	}

	stats := map[string]interface{}{
		"loading":       loading,
		"aggregated":    len(articles),
		"featured":      featured,
		"per_section":   perSection,
		"sections":      len(content.Sections),
		"remote_source": h.ghostClient.Enabled(),
		"syndication":   len(h.sources),
	}

	if storedCount, err := h.articleRepo.Count(); err == nil {
		stats["stored_articles"] = storedCount
	}
	if tagCount, err := h.tagRepo.Count(); err == nil {
		stats["tags"] = tagCount
	}

	c.JSON(http.StatusOK, stats)
}
