package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voxummah/newsdesk/app/cms"
	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/tasks"
)

func (h *Handler) APIListArticles(c *gin.Context) {
	opts := database.ListOptions{
		Category:      c.Query("category"),
		PublishedOnly: c.Query("published") == "true",
		FeaturedOnly:  c.Query("featured") == "true",
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		opts.Limit = limit
	}

	articles, err := h.articleRepo.List(opts)
	if err != nil {
		slog.Error("Database error", "operation", "list_articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

func (h *Handler) APICreateArticle(c *gin.Context) {
	var draft cms.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	article, err := h.cmsService.CreateArticle(draft)
	if err != nil {
		if errs, ok := err.(cms.ValidationErrors); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": errs})
			return
		}
		slog.Error("Failed to create article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *Handler) APIUpdateArticle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing article id parameter"})
		return
	}

	var draft cms.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	existing, err := h.articleRepo.GetById(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_id", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	article, err := h.cmsService.UpdateArticle(id, draft)
	if err != nil {
		if errs, ok := err.(cms.ValidationErrors); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": errs})
			return
		}
		slog.Error("Failed to update article", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *Handler) APIDeleteArticle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing article id parameter"})
		return
	}

	existing, err := h.articleRepo.GetById(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_by_id", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if err := h.cmsService.DeleteArticle(id); err != nil {
		slog.Error("Failed to delete article", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *Handler) APISearchTags(c *gin.Context) {
	limit := 20
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	tags, err := h.cmsService.SearchTags(c.Query("q"), limit)
	if err != nil {
		slog.Error("Database error", "operation", "search_tags", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"total": len(tags),
	})
}

func (h *Handler) APICreateTag(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name is required"})
		return
	}

	tag, err := h.cmsService.CreateTag(body.Name)
	if err != nil {
		slog.Error("Failed to create tag", "name", body.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// APISyndicate enqueues an immediate syndication run for every configured
// source, ahead of the regular schedule.
func (h *Handler) APISyndicate(c *gin.Context) {
	if len(h.sources) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No syndication sources configured"})
		return
	}

	enqueued := make([]gin.H, 0, len(h.sources))
	for _, source := range h.sources {
		task := tasks.NewSyndicateFeedTask(source, h.httpClient, h.parser, h.extractor, h.articleRepo, h.userAgent)
		if err := h.scheduler.EnqueueTask(task); err != nil {
			slog.Error("Failed to enqueue syndication task", "source", source.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to enqueue syndication task",
				"source":  source.Name,
				"details": err.Error(),
			})
			return
		}
		enqueued = append(enqueued, gin.H{
			"id":     task.ID,
			"type":   task.Type,
			"source": source.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Syndication tasks enqueued successfully",
		"tasks":   enqueued,
	})
}
