package cms

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voxummah/newsdesk/app/content"
	"github.com/voxummah/newsdesk/app/database"
)

// Service is the authoring layer: it owns slug assignment, validation,
// derived defaults and tag bookkeeping on top of the article store.
type Service struct {
	articles database.ArticleRepository
	tags     database.TagRepository
}

func NewService(articles database.ArticleRepository, tags database.TagRepository) *Service {
	return &Service{articles: articles, tags: tags}
}

func (s *Service) CreateArticle(draft Draft) (*database.StoredArticle, error) {
	if errs := ValidateDraft(draft); errs != nil {
		return nil, errs
	}

	slug, err := s.resolveSlug(draft, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := database.StoredArticle{
		Article: content.Article{
			Id:        uuid.NewString(),
			Slug:      slug,
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScheduledPublishAt: draft.ScheduledPublishAt,
	}
	s.applyDraft(&article, draft)

	if err := s.articles.Create(article); err != nil {
		return nil, fmt.Errorf("failed to store article: %w", err)
	}

	s.linkTags(article.Tags)
	slog.Info("Article created", "id", article.Id, "slug", article.Slug, "category", article.Category)

	return &article, nil
}

func (s *Service) UpdateArticle(id string, draft Draft) (*database.StoredArticle, error) {
	existing, err := s.articles.GetById(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("article %s not found", id)
	}

	if errs := ValidateDraft(draft); errs != nil {
		return nil, errs
	}

	slug, err := s.resolveSlug(draft, id)
	if err != nil {
		return nil, err
	}

	article := *existing
	article.Slug = slug
	article.ScheduledPublishAt = draft.ScheduledPublishAt
	article.UpdatedAt = time.Now().UTC()
	s.applyDraft(&article, draft)

	if err := s.articles.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.linkTags(article.Tags)
	slog.Info("Article updated", "id", article.Id, "slug", article.Slug)

	return &article, nil
}

func (s *Service) DeleteArticle(id string) error {
	if err := s.articles.Delete(id); err != nil {
		return err
	}
	slog.Info("Article deleted", "id", id)
	return nil
}

// RecordView logs a read of a published article. Failures are logged only;
// view tracking never breaks a page load.
func (s *Service) RecordView(id, userAgent string) {
	if err := s.articles.IncrementViewCount(id, userAgent); err != nil {
		slog.Warn("Failed to record article view", "id", id, "error", err)
	}
}

func (s *Service) SearchTags(query string, limit int) ([]database.TagRecord, error) {
	return s.tags.Search(query, limit)
}

func (s *Service) CreateTag(name string) (*database.TagRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	return s.tags.GetOrCreate(name, GenerateSlug(name))
}

// applyDraft copies authored fields onto the article and fills the named
// defaults for everything the author left blank.
func (s *Service) applyDraft(article *database.StoredArticle, draft Draft) {
	article.Title = draft.Title
	article.Body = draft.Body
	article.ImageURL = draft.ImageURL
	article.Published = draft.Published
	article.Featured = draft.Featured
	article.FeaturedPriority = draft.FeaturedPriority
	article.Tags = draft.Tags
	if !draft.Featured {
		article.FeaturedPriority = 0
	}

	article.Excerpt = draft.Excerpt
	if article.Excerpt == "" {
		article.Excerpt = content.Excerpt(draft.Body, content.DefaultExcerptLength)
	}

	article.Category = draft.Category
	if content.SectionById(article.Category) == nil {
		article.Category = content.SectionFromTags(draft.Tags)
	}

	article.ContentType = draft.ContentType
	if article.ContentType == "" {
		article.ContentType = content.DefaultContentType
	}

	article.AuthorName = draft.AuthorName
	if article.AuthorName == "" {
		article.AuthorName = content.DefaultAuthorName
	}
}

// resolveSlug takes the authored slug (or derives one from the title) and
// appends a numeric suffix until it is unique in the store.
func (s *Service) resolveSlug(draft Draft, excludeId string) (string, error) {
	base := draft.Slug
	if base == "" {
		base = GenerateSlug(draft.Title)
	}
	if base == "" {
		return "", fmt.Errorf("could not derive a slug from title %q", draft.Title)
	}

	slug := base
	for suffix := 2; ; suffix++ {
		exists, err := s.articles.SlugExists(slug, excludeId)
		if err != nil {
			return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, suffix)
	}
}

func (s *Service) linkTags(tags []string) {
	for _, name := range tags {
		record, err := s.tags.GetOrCreate(name, GenerateSlug(name))
		if err != nil {
			slog.Warn("Failed to register tag", "tag", name, "error", err)
			continue
		}
		if err := s.tags.IncrementUsage(record.Slug); err != nil {
			slog.Warn("Failed to bump tag usage", "tag", name, "error", err)
		}
	}
}
