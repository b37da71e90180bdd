package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type articleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) ArticleRepository {
	return &articleRepository{db: db}
}

const articleColumns = `id, title, slug, body, excerpt, image_url, category, content_type,
	author_name, published, featured, featured_priority, view_count, tags,
	COALESCE(source_guid, ''), scheduled_publish_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *articleRepository) scanArticle(row rowScanner) (*StoredArticle, error) {
	var article StoredArticle
	var tagsJSON, createdAt, updatedAt string
	var scheduledAt sql.NullString

	err := row.Scan(
		&article.Id, &article.Title, &article.Slug, &article.Body, &article.Excerpt,
		&article.ImageURL, &article.Category, &article.ContentType, &article.AuthorName,
		&article.Published, &article.Featured, &article.FeaturedPriority, &article.ViewCount,
		&tagsJSON, &article.SourceGUID, &scheduledAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &article.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if article.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if article.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	if scheduledAt.Valid && scheduledAt.String != "" {
		ts, err := time.Parse(time.RFC3339, scheduledAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scheduled_publish_at: %w", err)
		}
		article.ScheduledPublishAt = &ts
	}

	return &article, nil
}

func (r *articleRepository) GetById(id string) (*StoredArticle, error) {
	row := r.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)

	article, err := r.scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

func (r *articleRepository) GetBySlug(slug string) (*StoredArticle, error) {
	row := r.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug)

	article, err := r.scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}
	return article, nil
}

func (r *articleRepository) List(opts ListOptions) ([]StoredArticle, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE 1 = 1`
	args := []interface{}{}

	if opts.PublishedOnly {
		query += ` AND published = 1`
	}
	if opts.FeaturedOnly {
		query += ` AND featured = 1`
	}
	if opts.Category != "" {
		query += ` AND category = ?`
		args = append(args, opts.Category)
	}

	if opts.FeaturedOnly {
		query += ` ORDER BY featured_priority DESC, created_at DESC`
	} else {
		query += ` ORDER BY created_at DESC`
	}

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []StoredArticle
	for rows.Next() {
		article, err := r.scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *article)
	}

	return articles, rows.Err()
}

func (r *articleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *articleRepository) Create(article StoredArticle) error {
	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO articles (
			id, title, slug, body, excerpt, image_url, category, content_type,
			author_name, published, featured, featured_priority, view_count, tags,
			source_guid, scheduled_publish_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.Id, article.Title, article.Slug, article.Body, article.Excerpt,
		article.ImageURL, article.Category, article.ContentType, article.AuthorName,
		article.Published, article.Featured, article.FeaturedPriority, article.ViewCount,
		string(tagsJSON), nullableString(article.SourceGUID), nullableTime(article.ScheduledPublishAt),
		article.CreatedAt.Format(time.RFC3339), article.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *articleRepository) Update(article StoredArticle) error {
	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	result, err := r.db.Exec(`
		UPDATE articles SET
			title = ?, slug = ?, body = ?, excerpt = ?, image_url = ?, category = ?,
			content_type = ?, author_name = ?, published = ?, featured = ?,
			featured_priority = ?, tags = ?, scheduled_publish_at = ?, updated_at = ?
		WHERE id = ?
	`, article.Title, article.Slug, article.Body, article.Excerpt, article.ImageURL,
		article.Category, article.ContentType, article.AuthorName, article.Published,
		article.Featured, article.FeaturedPriority, string(tagsJSON),
		nullableTime(article.ScheduledPublishAt), article.UpdatedAt.Format(time.RFC3339),
		article.Id)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %s not found", article.Id)
	}
	return nil
}

func (r *articleRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %s not found", id)
	}
	return nil
}

func (r *articleRepository) SlugExists(slug, excludeId string) (bool, error) {
	var id string
	var err error
	if excludeId != "" {
		err = r.db.QueryRow(`SELECT id FROM articles WHERE slug = ? AND id != ? LIMIT 1`, slug, excludeId).Scan(&id)
	} else {
		err = r.db.QueryRow(`SELECT id FROM articles WHERE slug = ? LIMIT 1`, slug).Scan(&id)
	}

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return true, nil
}

func (r *articleRepository) IncrementViewCount(id, userAgent string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := r.db.Exec(`
		INSERT INTO article_views (article_id, user_agent, created_at) VALUES (?, ?, ?)
	`, id, userAgent, now); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}

	if _, err := r.db.Exec(`
		UPDATE articles SET view_count = view_count + 1 WHERE id = ?
	`, id); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

func (r *articleRepository) PublishScheduled(now time.Time) (int, error) {
	result, err := r.db.Exec(`
		UPDATE articles
		SET published = 1, scheduled_publish_at = NULL, updated_at = ?
		WHERE published = 0
		  AND scheduled_publish_at IS NOT NULL
		  AND scheduled_publish_at <= ?
	`, now.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to publish scheduled articles: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check publish result: %w", err)
	}
	return int(affected), nil
}

func (r *articleRepository) UpsertSyndicated(article StoredArticle) error {
	if article.SourceGUID == "" {
		return fmt.Errorf("syndicated article requires a source GUID")
	}

	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	// Single write connection, so check-then-write is race-free. An upsert on
	// the partial source_guid index would still error on the slug constraint
	// for re-ingested items.
	var existingId string
	err = r.db.QueryRow(`SELECT id FROM articles WHERE source_guid = ?`, article.SourceGUID).Scan(&existingId)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up syndicated article: %w", err)
	}

	if existingId != "" {
		_, err = r.db.Exec(`
			UPDATE articles SET
				title = ?, body = ?, excerpt = ?, image_url = ?, category = ?,
				tags = ?, updated_at = ?
			WHERE source_guid = ?
		`, article.Title, article.Body, article.Excerpt, article.ImageURL,
			article.Category, string(tagsJSON),
			article.UpdatedAt.Format(time.RFC3339), article.SourceGUID)
		if err != nil {
			return fmt.Errorf("failed to update syndicated article: %w", err)
		}
		return nil
	}

	_, err = r.db.Exec(`
		INSERT INTO articles (
			id, title, slug, body, excerpt, image_url, category, content_type,
			author_name, published, featured, featured_priority, view_count, tags,
			source_guid, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.Id, article.Title, article.Slug, article.Body, article.Excerpt,
		article.ImageURL, article.Category, article.ContentType, article.AuthorName,
		article.Published, article.Featured, article.FeaturedPriority, article.ViewCount,
		string(tagsJSON), article.SourceGUID,
		article.CreatedAt.Format(time.RFC3339), article.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert syndicated article: %w", err)
	}
	return nil
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) interface{} {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339)
}
